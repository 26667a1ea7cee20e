package catalog

import "github.com/m04kA/SMC-CourtService/internal/domain"

// Catalog справочник кортов. Данные неизменяемы на все время жизни процесса:
// каталог заполняется один раз при старте и дальше только читается,
// поэтому синхронизация не нужна.
type Catalog struct {
	courts []domain.Court
	byID   map[string]*domain.Court
}

// New создает каталог из переданного набора кортов
func New(courts []domain.Court) *Catalog {
	c := &Catalog{
		courts: courts,
		byID:   make(map[string]*domain.Court, len(courts)),
	}
	for i := range c.courts {
		c.byID[c.courts[i].ID] = &c.courts[i]
	}
	return c
}

// Default возвращает каталог комплекса со стандартным набором кортов
func Default() *Catalog {
	return New(defaultCourts())
}

// GetCourt возвращает корт по идентификатору
func (c *Catalog) GetCourt(id string) (*domain.Court, error) {
	court, ok := c.byID[id]
	if !ok {
		return nil, ErrCourtNotFound
	}
	return court, nil
}

// ListCourts возвращает все корты в порядке каталога
func (c *Catalog) ListCourts() []domain.Court {
	out := make([]domain.Court, len(c.courts))
	copy(out, c.courts)
	return out
}
