package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Normalized(t *testing.T) {
	tests := []struct {
		name string
		in   PageRequest
		want PageRequest
	}{
		{
			name: "zero value gets defaults",
			in:   PageRequest{},
			want: PageRequest{Page: 0, Size: 20, Sort: "created_at desc"},
		},
		{
			name: "negative page clamped to zero",
			in:   PageRequest{Page: -3, Size: 10, Sort: "title asc"},
			want: PageRequest{Page: 0, Size: 10, Sort: "title asc"},
		},
		{
			name: "oversized page clamped to max",
			in:   PageRequest{Page: 2, Size: 500, Sort: "title asc"},
			want: PageRequest{Page: 2, Size: 100, Sort: "title asc"},
		},
		{
			name: "valid request unchanged",
			in:   PageRequest{Page: 4, Size: 50, Sort: "due_date asc"},
			want: PageRequest{Page: 4, Size: 50, Sort: "due_date asc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalized())
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 0, Size: 20}.Offset())
	assert.Equal(t, 40, PageRequest{Page: 2, Size: 20}.Offset())
}
