package validation

import (
	"testing"

	"profilecard/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string       `validate:"required"`
	Username string       `validate:"omitempty,username"`
	Links    []sampleLink `validate:"dive"`
	Day      string       `validate:"omitempty,weekday"`
}

type sampleLink struct {
	Platform string `validate:"platform"`
}

func TestValidUsername(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"jane-doe", true},
		{"a_b", true},
		{"ABC123", true},
		{"ab", false},
		{"", false},
		{"jane doe", false},
		{"jane.doe", false},
		{"zoë", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidUsername(tt.in))
		})
	}
}

func TestNew_RegisteredRules(t *testing.T) {
	v := New()

	ok := sample{
		Name:     "Jane Doe",
		Username: "jane-doe",
		Links:    []sampleLink{{Platform: "Twitter"}},
		Day:      "tuesday",
	}
	require.NoError(t, v.Struct(ok))

	noUsername := ok
	noUsername.Username = ""
	require.NoError(t, v.Struct(noUsername))

	bad := sample{
		Username: "j!",
		Links:    []sampleLink{{Platform: "myspace"}},
		Day:      "Funday",
	}
	err := v.Struct(bad)
	require.Error(t, err)

	msgs := Describe(err)
	assert.Contains(t, msgs, "Name is required")
	assert.Contains(t, msgs, "Links[0].Platform is not a supported platform")
	assert.Contains(t, msgs, "Day must be a day of the week")
	assert.Len(t, msgs, 4)
}

func TestDescribe_NonValidatorError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, Describe(errors.New("boom")))
}

type jsonTagged struct {
	Name  string       `json:"name" validate:"required"`
	Links []sampleLink `json:"socialLinks" validate:"dive"`
}

func TestDescribe_UsesJSONNames(t *testing.T) {
	err := New().Struct(jsonTagged{Links: []sampleLink{{Platform: "myspace"}}})
	require.Error(t, err)

	assert.ElementsMatch(t, []string{
		"name is required",
		"socialLinks[0].Platform is not a supported platform",
	}, Describe(err))
}
