package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactCreateAndListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	phone := "+54 11 5555-0000"
	first, err := svc.Create(ContactCreate{
		Name: "Ana", Email: "ana@example.com", Phone: &phone, Message: "hola",
	})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	// Force distinct timestamps so the ordering is deterministic.
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)

	second, err := svc.Create(ContactCreate{
		Name: "Bruno", Email: "bruno@example.com", Message: "consulta",
	})
	require.NoError(t, err)
	assert.Nil(t, second.Phone)

	messages, err := svc.List()
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Bruno", messages[0].Name)
	assert.Equal(t, "Ana", messages[1].Name)
}

func TestMailerUnconfiguredIsMock(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)
	mailer := &Mailer{}

	msg, err := svc.Create(ContactCreate{
		Name: "Ana", Email: "ana@example.com", Message: "hola",
	})
	require.NoError(t, err)

	// No SMTP settings: the notification logs instead of sending and
	// never reports an error.
	assert.NoError(t, mailer.SendContactNotification(msg))
}
