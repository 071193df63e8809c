package breeds

import "context"

// Catalog responde si una raza existe en el catálogo externo.
// La comparación es exacta e insensible a mayúsculas.
// Un error significa que no se pudo consultar (no que la raza no exista).
type Catalog interface {
	Contains(ctx context.Context, breed string) (bool, error)
}

// CatalogFunc adapta una función a Catalog (útil en tests y wiring).
type CatalogFunc func(ctx context.Context, breed string) (bool, error)

func (f CatalogFunc) Contains(ctx context.Context, breed string) (bool, error) {
	return f(ctx, breed)
}
