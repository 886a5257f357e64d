package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// Columns must hold anything SubmitEventInput accepts.
func TestNotificationModel_ColumnWidths(t *testing.T) {
	t.Parallel()

	s, err := schema.Parse(&NotificationModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	tests := []struct {
		field string
		want  schema.DataType
	}{
		{field: "Name", want: "varchar(255)"},
		{field: "SecurityCode", want: "varchar(255)"},
		{field: "RawNotification", want: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			t.Parallel()

			f := s.LookUpField(tt.field)
			require.NotNil(t, f)
			assert.Equal(t, tt.want, f.DataType)
		})
	}
}
