package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *Submission
		wantErr error
	}{
		{
			name: "valid submission",
			raw:  "username=alice&message=hi",
			want: &Submission{Username: "alice", Message: "hi"},
		},
		{
			name: "plus and percent escapes",
			raw:  "username=alice&message=hello+there%21",
			want: &Submission{Username: "alice", Message: "hello there!"},
		},
		{
			name: "fields trimmed",
			raw:  "username=%20alice%20&message=+hi+",
			want: &Submission{Username: "alice", Message: "hi"},
		},
		{
			name: "first occurrence wins on repeated key",
			raw:  "username=alice&username=bob&message=hi",
			want: &Submission{Username: "alice", Message: "hi"},
		},
		{
			name: "undecodable escape kept verbatim",
			raw:  "username=al%zzice&message=hi",
			want: &Submission{Username: "al%zzice", Message: "hi"},
		},
		{
			name: "invalid utf8 replaced not rejected",
			raw:  "username=al\xffice&message=hi",
			want: &Submission{Username: "al�ice", Message: "hi"},
		},
		{
			name:    "empty username",
			raw:     "username=&message=hi",
			wantErr: ErrIncomplete,
		},
		{
			name:    "whitespace-only message",
			raw:     "username=alice&message=%20%20",
			wantErr: ErrIncomplete,
		},
		{
			name:    "missing fields",
			raw:     "foo=bar",
			wantErr: ErrIncomplete,
		},
		{
			name:    "empty payload",
			raw:     "",
			wantErr: ErrIncomplete,
		},
		{
			name: "blank values kept for unrelated keys",
			raw:  "extra=&username=alice&message=hi",
			want: &Submission{Username: "alice", Message: "hi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.raw))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQueryNeverFails(t *testing.T) {
	// Garbage input degrades to empty or raw tokens, never a panic or error.
	fields := parseQuery("&&&=&%%%&a==b")
	assert.Equal(t, "", fields[""])
	assert.Equal(t, "=b", fields["a"])
}
