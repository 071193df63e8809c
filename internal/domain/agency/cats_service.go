package agency

import (
	"context"

	"spy-cat-agency/internal/platform/paging"
)

func (s *Service) CreateCat(ctx context.Context, in CatInput) (Cat, error) {
	in = in.normalize()
	if err := ValidateCat(in); err != nil {
		return Cat{}, err
	}
	if err := s.checkBreed(ctx, in.Breed); err != nil {
		return Cat{}, err
	}

	var out Cat
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		c, err := tx.Cats().Create(ctx, Cat{
			Name:              in.Name,
			YearsOfExperience: in.YearsOfExperience,
			Breed:             in.Breed,
			Salary:            in.Salary,
		})
		if err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return Cat{}, err
	}

	s.log.Info("spy cat created", map[string]any{"cat_id": out.ID})
	return out, nil
}

// GetCat devuelve el gato con sus misiones.
func (s *Service) GetCat(ctx context.Context, id int64) (CatDetail, error) {
	var out CatDetail
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		c, err := tx.Cats().GetByID(ctx, id)
		if err != nil {
			return orNotFound(err, "spy cat")
		}
		missions, err := tx.Missions().ListByCat(ctx, c.ID)
		if err != nil {
			return err
		}
		out = CatDetail{Cat: c, Missions: missions}
		return nil
	})
	return out, err
}

func (s *Service) ListCats(ctx context.Context, page paging.Request) ([]Cat, int, error) {
	var (
		items []Cat
		total int
	)
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		var err error
		items, total, err = tx.Cats().List(ctx, page)
		return err
	})
	return items, total, err
}

// UpdateCat reemplaza todos los campos. La existencia se revisa antes que
// la raza, así un id inexistente no cuesta una llamada al catálogo.
func (s *Service) UpdateCat(ctx context.Context, id int64, in CatInput) (Cat, error) {
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		_, err := tx.Cats().GetByID(ctx, id)
		return orNotFound(err, "spy cat")
	})
	if err != nil {
		return Cat{}, err
	}

	in = in.normalize()
	if err := ValidateCat(in); err != nil {
		return Cat{}, err
	}
	if err := s.checkBreed(ctx, in.Breed); err != nil {
		return Cat{}, err
	}

	var out Cat
	err = s.store.WithinTx(ctx, func(tx Tx) error {
		c, err := tx.Cats().Update(ctx, Cat{
			ID:                id,
			Name:              in.Name,
			YearsOfExperience: in.YearsOfExperience,
			Breed:             in.Breed,
			Salary:            in.Salary,
		})
		if err != nil {
			return orNotFound(err, "spy cat")
		}
		out = c
		return nil
	})
	return out, err
}

// DeleteCat borra el gato; sus misiones quedan sin asignar.
func (s *Service) DeleteCat(ctx context.Context, id int64) (Cat, error) {
	var out Cat
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		c, err := tx.Cats().Delete(ctx, id)
		if err != nil {
			return orNotFound(err, "spy cat")
		}
		out = c
		return nil
	})
	if err != nil {
		return Cat{}, err
	}

	s.log.Info("spy cat deleted", map[string]any{"cat_id": out.ID})
	return out, nil
}
