package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStory(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		story    string
		criteria []string
		wantErr  bool
	}{
		"valid story without criteria": {
			story:   "As a user, I want to log into my account",
			wantErr: false,
		},
		"valid story with criteria": {
			story:    "As a user, I want to log into my account",
			criteria: []string{"Valid credentials required", "Error handling for invalid login"},
			wantErr:  false,
		},
		"exactly at minimum length": {
			story:   "0123456789",
			wantErr: false,
		},
		"one below minimum length": {
			story:   "012345678",
			wantErr: true,
		},
		"too short": {
			story:   "Short",
			wantErr: true,
		},
		"empty story": {
			story:   "",
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			in, err := ValidateStory(tc.story, tc.criteria)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Nil(t, in)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.story, in.Story)
			assert.Equal(t, tc.criteria, in.AcceptanceCriteria)
			assert.Equal(t, DefaultStoryType, in.StoryType)
		})
	}
}

func TestValidateStory_OmittedCriteriaStayNil(t *testing.T) {
	t.Parallel()

	in, err := ValidateStory("As a user, I want to test the system functionality", nil)
	require.NoError(t, err)
	assert.Nil(t, in.AcceptanceCriteria)
}
