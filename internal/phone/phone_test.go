package phone

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "same number in two formats collapses to one",
			text: "+7 999 123-45-67, 8(999)123-45-67, звонил вчера",
			want: []string{"+79991234567"},
		},
		{
			name: "trunk prefix variants",
			text: "8 912 345-67-89\n+7(912)345-67-89\n79123456789",
			want: []string{"+79123456789"},
		},
		{
			name: "bare ten digits",
			text: "client 9123456789 wants windows",
			want: []string{"+79123456789"},
		},
		{
			name: "insertion order of first recognition",
			text: "first 89001112233 then +7 (495) 123-45-67 then 89001112233",
			want: []string{"+79001112233", "+74951234567"},
		},
		{
			name: "dashed groups",
			text: "912-345-67-89",
			want: []string{"+79123456789"},
		},
		{
			name: "non-breaking spaces between groups",
			text: "8\u00a0912\u00a0345\u00a067\u00a089",
			want: []string{"+79123456789"},
		},
		{
			name: "narrow no-break space and unicode hyphens",
			text: "+7\u202f912\u2011345\u201067\u201389",
			want: []string{"+79123456789"},
		},
		{
			name: "too many digits is dropped",
			text: "order 123456789012",
			want: nil,
		},
		{
			name: "too few digits is dropped",
			text: "call 912 345 67",
			want: nil,
		},
		{
			name: "no digits",
			text: "just some text",
			want: nil,
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractAll(tt.text))
		})
	}
}

func TestExtract_Restartable(t *testing.T) {
	seq := Extract("89123456789 and 84951234567")

	var first, second []string
	for p := range seq {
		first = append(first, p)
	}
	for p := range seq {
		second = append(second, p)
	}

	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestExtract_StopsEarly(t *testing.T) {
	var got []string
	for p := range Extract("89123456789 84951234567 89001112233") {
		got = append(got, p)
		if len(got) == 1 {
			break
		}
	}
	assert.Equal(t, []string{"+79123456789"}, got)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{raw: "+7 (912) 345-67-89", want: "+79123456789", wantOK: true},
		{raw: "8 912 345 67 89", want: "+79123456789", wantOK: true},
		{raw: "9123456789", want: "+79123456789", wantOK: true},
		{raw: "19123456789", wantOK: false},
		{raw: "12345", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := Normalize(tt.raw)
		assert.Equal(t, tt.wantOK, ok, tt.raw)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, tt.raw)
		}
	}
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, IsCanonical("+79123456789"))
	assert.False(t, IsCanonical("89123456789"))
	assert.False(t, IsCanonical("+7912345678"))
	assert.False(t, IsCanonical("+7 912 345 67 89"))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "+7912345****", Mask("+79123456789"))
	assert.Equal(t, "***", Mask("123"))
	assert.Equal(t, "6789", LastFour("+79123456789"))
}

func TestExtract_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	national := gen.SliceOfN(10, gen.IntRange(0, 9)).Map(func(ds []int) string {
		var b strings.Builder
		for _, d := range ds {
			fmt.Fprintf(&b, "%d", d)
		}
		return b.String()
	})

	properties.Property("extraction is a fixed point on its own output", prop.ForAll(
		func(numbers []string) bool {
			var text strings.Builder
			for _, n := range numbers {
				text.WriteString("8 (" + n[:3] + ") " + n[3:6] + "-" + n[6:8] + "-" + n[8:] + "; ")
			}
			first := ExtractAll(text.String())
			second := ExtractAll(strings.Join(first, "\n"))
			if len(first) != len(second) {
				return false
			}
			for i := range first {
				if first[i] != second[i] || !IsCanonical(first[i]) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(national),
	))

	properties.Property("every format of one number yields the same identifier", prop.ForAll(
		func(n string) bool {
			forms := []string{
				"+7" + n,
				"8" + n,
				"7" + n,
				"+7 (" + n[:3] + ") " + n[3:6] + "-" + n[6:8] + "-" + n[8:],
			}
			got := ExtractAll(strings.Join(forms, ", "))
			return len(got) == 1 && got[0] == "+7"+n
		},
		national,
	))

	properties.TestingRun(t)
}
