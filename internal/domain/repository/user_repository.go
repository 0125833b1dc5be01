package repository

import "github.com/jhoicas/servihogar-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Create debe traducir la violación del índice unique de email a
// domain.ErrEmailAlreadyExists: ese es el árbitro de la carrera create/create,
// no el pre-chequeo con FindByEmail (que es solo cortesía).
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
}
