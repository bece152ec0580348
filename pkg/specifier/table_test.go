package specifier

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/decnum/pkg/decnum"
)

var _ decnum.SpecifierLookup = (*Table)(nil)

func TestEntry_Validate(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		assert.NoError(t, Entry{Abbreviation: "ПЭ3", Directory: "PE3"}.Validate())
	})

	t.Run("missing fields", func(t *testing.T) {
		err := Entry{}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "abbreviation: cannot be blank")
		assert.Contains(t, err.Error(), "directory: cannot be blank")
	})

	t.Run("abbreviation must start with a Cyrillic letter", func(t *testing.T) {
		err := Entry{Abbreviation: "3Э", Directory: "E3"}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must start with a Cyrillic letter")

		err = Entry{Abbreviation: "SP", Directory: "SP"}.Validate()
		require.Error(t, err)
	})

	t.Run("abbreviation without whitespace", func(t *testing.T) {
		err := Entry{Abbreviation: "С П", Directory: "SP"}.Validate()
		require.Error(t, err)
	})

	t.Run("directory must be a single name", func(t *testing.T) {
		err := Entry{Abbreviation: "СП", Directory: "SP/extra"}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be a single directory name")
	})
}

func TestNewTable(t *testing.T) {
	t.Run("builds lookup", func(t *testing.T) {
		table, err := NewTable([]Entry{
			{Abbreviation: "СП", Directory: "SP"},
			{Abbreviation: "Д", Directory: "D"},
			{Abbreviation: "Д1", Directory: "D"},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, table.Len())

		dir, ok := table.Specifier("Д1")
		assert.True(t, ok)
		assert.Equal(t, "D", dir)

		_, ok = table.Specifier("ЖЖ")
		assert.False(t, ok)

		_, ok = table.Specifier("")
		assert.False(t, ok)
	})

	t.Run("entries are sorted", func(t *testing.T) {
		table, err := NewTable([]Entry{
			{Abbreviation: "СП", Directory: "SP"},
			{Abbreviation: "КД", Directory: "KD"},
		})
		require.NoError(t, err)

		entries := table.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "КД", entries[0].Abbreviation)
		assert.Equal(t, "СП", entries[1].Abbreviation)
	})

	t.Run("reports every problem", func(t *testing.T) {
		_, err := NewTable([]Entry{
			{Abbreviation: "СП", Directory: "SP"},
			{Abbreviation: "СП", Directory: "SP2"},
			{Abbreviation: "", Directory: "X"},
			{Abbreviation: "КД", Directory: ""},
		})
		require.Error(t, err)

		var merr *multierror.Error
		require.True(t, errors.As(err, &merr))
		assert.Len(t, merr.Errors, 3)
		assert.Contains(t, err.Error(), "duplicate specifier abbreviation: СП")
	})

	t.Run("empty table is allowed", func(t *testing.T) {
		table, err := NewTable(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})
}

func TestMerge(t *testing.T) {
	base, err := NewTable([]Entry{
		{Abbreviation: "СП", Directory: "SP"},
		{Abbreviation: "КД", Directory: "KD"},
	})
	require.NoError(t, err)

	merged, err := Merge(base, []Entry{
		{Abbreviation: "КД", Directory: "DETAIL"},
		{Abbreviation: "ИЭ", Directory: "IE"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, merged.Len())

	dir, _ := merged.Specifier("КД")
	assert.Equal(t, "DETAIL", dir)
	dir, _ = merged.Specifier("СП")
	assert.Equal(t, "SP", dir)

	// base is unchanged
	dir, _ = base.Specifier("КД")
	assert.Equal(t, "KD", dir)
}

func TestDefault(t *testing.T) {
	table := Default()

	for abbreviation, want := range map[string]string{
		decnum.SpecificationSpecifier: "SP",
		decnum.DetailSpecifier:        "KD",
		"СБ":                          "SB",
		"Э3":                          "E3",
		"ПЭ3":                         "PE3",
	} {
		got, ok := table.Specifier(abbreviation)
		assert.True(t, ok, abbreviation)
		assert.Equal(t, want, got, abbreviation)
	}
}

func TestDefault_WithResolver(t *testing.T) {
	r, err := decnum.New(Default())
	require.NoError(t, err)

	tests := map[string]string{
		"ВУИА.735678.123":     "VUIA/735678/123/KD",
		"ВУИА.012345-123":     "VUIA/012345/123/SP",
		"ЮПИЯ.468332.001СБ":   "_UPI_A/468332/001/SB",
		"ВУИА.735678.12-3":    "VUIA/735678/12/-3/KD",
		"ВУИА.468332.005ПЭ3":  "VUIA/468332/005/PE3",
		"БА5.123.456":         "BA/5123/456/SP",
		"ВУИА.411111.001ЧД":   "VUIA/411111/001/KD",
		"ЮПИЯ.00123-01 12 01": "_UPI_A/00123/01/12/01",
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			p, err := r.Resolve(input)
			require.NoError(t, err)
			assert.Equal(t, want, p.String())
		})
	}
}
