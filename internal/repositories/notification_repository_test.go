package repositories

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAsRead_RecipientScoped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresNotificationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "notifications" SET "is_read"=$1 WHERE id = $2 AND (recipient_id = $3 OR recipient_id IS NULL)`)).
		WithArgs(true, 5, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.MarkAsRead(5, 1)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAsRead_OtherUsersNotificationNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresNotificationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "notifications"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.MarkAsRead(5, 2)

	assert.ErrorIs(t, err, ErrNotificationNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
