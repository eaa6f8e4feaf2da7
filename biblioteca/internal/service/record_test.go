package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/service"
)

// memBooks keeps libro rows in memory.
type memBooks struct {
	next  int
	books []model.Book
}

func (m *memBooks) List(context.Context) ([]model.Book, error) {
	out := make([]model.Book, len(m.books))
	copy(out, m.books)
	return out, nil
}

func (m *memBooks) Create(_ context.Context, fields model.Fields) (int, error) {
	if len(fields) == 0 {
		return 0, errs.ErrNoFields
	}
	m.next++
	b := model.Book{ID: m.next}
	m.apply(&b, fields)
	m.books = append(m.books, b)
	return b.ID, nil
}

func (m *memBooks) Update(_ context.Context, id int, fields model.Fields) error {
	for i := range m.books {
		if m.books[i].ID == id {
			m.apply(&m.books[i], fields)
		}
	}
	return nil
}

func (m *memBooks) Delete(_ context.Context, id int) error {
	for i := range m.books {
		if m.books[i].ID == id {
			m.books = append(m.books[:i], m.books[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memBooks) Exists(_ context.Context, id int) (bool, error) {
	for _, b := range m.books {
		if b.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memBooks) apply(b *model.Book, fields model.Fields) {
	for _, f := range fields {
		switch f.Column {
		case "titulo":
			b.Titulo = f.Value.(string)
		case "autor":
			b.Autor = f.Value.(string)
		case "disponible":
			b.Disponible = f.Value.(bool)
		}
	}
}

func TestRecords(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	books := service.NewRecords[model.Book](&memBooks{}, "libro", zap.NewExample())

	list, err := books.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	available := true
	msg, err := books.Create(ctx, model.BookRequest{Titulo: "Rayuela", Autor: "Julio Cortázar", Disponible: &available}.Fields())
	require.NoError(t, err)
	require.Equal(t, model.NewCreated("libro creado exitosamente", 1), msg)

	list, err = books.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Book{{ID: 1, Titulo: "Rayuela", Autor: "Julio Cortázar", Disponible: true}}, list)

	msg, err = books.Update(ctx, 1, model.Fields{{Column: "disponible", Value: false}})
	require.NoError(t, err)
	require.Equal(t, model.NewMessage("libro actualizado"), msg)

	// missing ids are not an error
	_, err = books.Update(ctx, 99, model.Fields{{Column: "titulo", Value: "x"}})
	require.NoError(t, err)

	list, err = books.List(ctx)
	require.NoError(t, err)
	require.False(t, list[0].Disponible)

	msg, err = books.Delete(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, model.NewMessage("libro eliminado"), msg)

	ok, err := books.Exists(ctx, 1)
	require.NoError(t, err)
	require.False(t, ok)
}
