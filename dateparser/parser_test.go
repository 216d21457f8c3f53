package dateparser_test

import (
	"testing"
	"time"

	"github.com/fwojciec/meetparse"
	"github.com/fwojciec/meetparse/dateparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements meetparse.DateParser at compile time.
var _ meetparse.DateParser = (*dateparser.Parser)(nil)

func fixedNow() time.Time {
	return time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
}

func TestParser_ParseDate(t *testing.T) {
	t.Parallel()

	t.Run("parses day-first numeric date", func(t *testing.T) {
		t.Parallel()

		p := dateparser.NewParser(dateparser.WithCurrentTime(fixedNow))

		got, ok := p.ParseDate("Fecha: 12/05/2024\nHora: 19:30h\nLugar: Bar Foo (mapa)")

		require.True(t, ok)
		assert.Equal(t, time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("parses spanish month names", func(t *testing.T) {
		t.Parallel()

		p := dateparser.NewParser(dateparser.WithCurrentTime(fixedNow))

		got, ok := p.ParseDate("Fecha: 12 de mayo de 2024")

		require.True(t, ok)
		assert.Equal(t, time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("parses english label", func(t *testing.T) {
		t.Parallel()

		p := dateparser.NewParser(dateparser.WithCurrentTime(fixedNow))

		got, ok := p.ParseDate("Date: 3 June 2024")

		require.True(t, ok)
		assert.Equal(t, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("drops time of day and applies location", func(t *testing.T) {
		t.Parallel()

		madrid := time.FixedZone("CEST", 2*60*60)
		p := dateparser.NewParser(
			dateparser.WithCurrentTime(fixedNow),
			dateparser.WithLocation(madrid),
		)

		got, ok := p.ParseDate("Fecha: 12/05/2024")

		require.True(t, ok)
		assert.Equal(t, time.Date(2024, time.May, 12, 0, 0, 0, 0, madrid), got)
	})

	t.Run("no label yields nothing", func(t *testing.T) {
		t.Parallel()

		p := dateparser.NewParser()

		_, ok := p.ParseDate("Hora: 19:30h")

		assert.False(t, ok)
	})

	t.Run("fields glued after the date are ignored", func(t *testing.T) {
		t.Parallel()

		p := dateparser.NewParser(dateparser.WithCurrentTime(fixedNow))

		got, ok := p.ParseDate("Fecha: 12/05/2024Hora: 19:30hLugar: Bar Foo (mapa)")

		require.True(t, ok)
		assert.Equal(t, time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("fields on the same line are not read as a relative date", func(t *testing.T) {
		t.Parallel()

		p := dateparser.NewParser(dateparser.WithCurrentTime(fixedNow))

		got, ok := p.ParseDate("Fecha: 12/05/2024 Hora: 19:30h")

		require.True(t, ok)
		assert.Equal(t, time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("finds the date inside surrounding words", func(t *testing.T) {
		t.Parallel()

		p := dateparser.NewParser(dateparser.WithCurrentTime(fixedNow))

		got, ok := p.ParseDate("Fecha: jueves 12 de mayo de 2024, en el sitio de siempre")

		require.True(t, ok)
		assert.Equal(t, time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("unparseable value yields nothing", func(t *testing.T) {
		t.Parallel()

		p := dateparser.NewParser(dateparser.WithCurrentTime(fixedNow))

		_, ok := p.ParseDate("Fecha: por confirmar")

		assert.False(t, ok)
	})
}
