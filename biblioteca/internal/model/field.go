package model

// Field is a column/value pair. Column always comes from server code,
// never from request input.
type Field struct {
	Column string
	Value  any
}

// Fields keeps insertion order so generated column lists are stable.
type Fields []Field

func (f Fields) Columns() []string {
	cols := make([]string, 0, len(f))
	for _, field := range f {
		cols = append(cols, field.Column)
	}
	return cols
}

func (f Fields) Values() []any {
	vals := make([]any, 0, len(f))
	for _, field := range f {
		vals = append(vals, field.Value)
	}
	return vals
}

func (r BookRequest) Fields() Fields {
	f := Fields{
		{Column: "titulo", Value: r.Titulo},
		{Column: "autor", Value: r.Autor},
	}
	if r.Disponible != nil {
		f = append(f, Field{Column: "disponible", Value: *r.Disponible})
	}
	return f
}

func (r UserRequest) Fields() Fields {
	return Fields{
		{Column: "nombre", Value: r.Nombre},
		{Column: "correo", Value: r.Correo},
	}
}
