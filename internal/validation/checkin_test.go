package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCheckInForm(t *testing.T) {
	t.Parallel()

	valid := CheckInForm{
		ArtistName: "MC FLOW",
		Instagram:  "@mcflow",
		GuestCount: 2,
		SongCount:  1,
	}

	t.Run("valid form has no field errors", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, ValidateCheckInForm(valid))
	})

	t.Run("artist name and instagram are required", func(t *testing.T) {
		t.Parallel()
		form := valid
		form.ArtistName = "  "
		form.Instagram = ""
		fields := ValidateCheckInForm(form)
		assert.Equal(t, "Please fill in this field", fields["artist_name"])
		assert.Equal(t, "Please fill in this field", fields["instagram"])
	})

	t.Run("guest count bounds", func(t *testing.T) {
		t.Parallel()
		form := valid
		form.GuestCount = -1
		assert.Contains(t, ValidateCheckInForm(form), "guest_count")

		form.GuestCount = 51
		assert.Contains(t, ValidateCheckInForm(form), "guest_count")
	})

	t.Run("song count bounds", func(t *testing.T) {
		t.Parallel()
		form := valid
		form.SongCount = 0
		assert.Contains(t, ValidateCheckInForm(form), "song_count")

		form.SongCount = 11
		assert.Contains(t, ValidateCheckInForm(form), "song_count")
	})

	t.Run("notes length", func(t *testing.T) {
		t.Parallel()
		form := valid
		form.OtherContent = strings.Repeat("x", 501)
		assert.Contains(t, ValidateCheckInForm(form), "other_content")
	})
}
