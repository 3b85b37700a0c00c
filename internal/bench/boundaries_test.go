package bench

import (
	"reflect"
	"testing"
)

func TestSkeleton(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"وہ گھر گیا۔ 2020!", "وہگھرگیا2020"},
		{"‘‘رکو،’’ ?", "رکو"},
		{"گئ\u06d2\u0654", "گئ\u06d3"},
	}

	for _, tt := range tests {
		if got := Skeleton(tt.input); got != tt.want {
			t.Errorf("Skeleton(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		sentences []string
		want      []int
	}{
		{
			name:      "gold split",
			text:      "ایک دو۔ تین چار۔",
			sentences: []string{"ایک دو۔", "تین چار۔"},
			want:      []int{5, 11},
		},
		{
			name:      "merged",
			text:      "ایک دو۔ تین چار۔",
			sentences: []string{"ایک دو تین چار۔"},
			want:      []int{11},
		},
		{
			name:      "inserted punctuation",
			text:      "ایک دو لیکن تین",
			sentences: []string{"ایک دو۔", "لیکن تین"},
			want:      []int{5, 12},
		},
		{
			name:      "dropped fragment",
			text:      "ایک دو۔ نہیں۔ تین چار۔",
			sentences: []string{"ایک دو۔", "تین چار۔"},
			want:      []int{5, 15},
		},
		{
			name:      "punctuation only sentence",
			text:      "۔",
			sentences: []string{"۔"},
			want:      nil,
		},
		{
			name:      "sentence not in text",
			text:      "ایک دو۔",
			sentences: []string{"تین۔", "ایک دو۔"},
			want:      []int{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Boundaries(tt.text, tt.sentences)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Boundaries() = %v, want %v", got, tt.want)
			}
		})
	}
}
