package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
)

func setupTicketPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS tickets (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		subject VARCHAR(255) NOT NULL,
		message TEXT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'open',
		admin_response TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestTicketWriteRepository_Save(t *testing.T) {
	db, teardown := setupTicketPostgresContainer(t)
	defer teardown()

	repo := NewTicketWriteRepository(db)
	ctx := context.Background()

	id, err := repo.Save(ctx, 1, "Payout delayed", "My June payout has not arrived", models.TicketOpen)
	assert.NoError(t, err)
	assert.NotZero(t, id)

	var ticket models.TicketDB
	err = db.Get(&ticket, "SELECT id, user_id, subject, message, status, admin_response, created_at, updated_at FROM tickets WHERE id=$1", id)
	assert.NoError(t, err)

	assert.Equal(t, int64(1), ticket.UserID)
	assert.Equal(t, "Payout delayed", ticket.Subject)
	assert.Equal(t, "My June payout has not arrived", ticket.Message)
	assert.Equal(t, models.TicketOpen, ticket.Status)
	assert.Nil(t, ticket.AdminResponse)
}

func TestTicketReadRepository_ListByUser(t *testing.T) {
	db, teardown := setupTicketPostgresContainer(t)
	defer teardown()

	writeRepo := NewTicketWriteRepository(db)
	readRepo := NewTicketReadRepository(db)
	ctx := context.Background()

	a, err := writeRepo.Save(ctx, 1, "First", "first message", models.TicketOpen)
	assert.NoError(t, err)
	b, err := writeRepo.Save(ctx, 1, "Second", "second message", models.TicketOpen)
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, 2, "Other", "other user's ticket", models.TicketOpen)
	assert.NoError(t, err)

	tickets, err := readRepo.ListByUser(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, tickets, 2)
	assert.ElementsMatch(t, []int64{a, b}, []int64{tickets[0].ID, tickets[1].ID})

	t.Run("NoTickets", func(t *testing.T) {
		tickets, err := readRepo.ListByUser(ctx, 99)
		assert.NoError(t, err)
		assert.Empty(t, tickets)
	})
}

func TestTicketWriteRepository_Update(t *testing.T) {
	db, teardown := setupTicketPostgresContainer(t)
	defer teardown()

	writeRepo := NewTicketWriteRepository(db)
	readRepo := NewTicketReadRepository(db)
	ctx := context.Background()

	id, err := writeRepo.Save(ctx, 1, "Broken cover upload", "Upload fails with a 500", models.TicketOpen)
	assert.NoError(t, err)

	answer := "Fixed, please retry"
	rows, err := writeRepo.Update(ctx, id, models.TicketClosed, &answer)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	tickets, err := readRepo.ListByUser(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, tickets, 1)
	assert.Equal(t, models.TicketClosed, tickets[0].Status)
	assert.Equal(t, "Fixed, please retry", *tickets[0].AdminResponse)

	t.Run("NotFound", func(t *testing.T) {
		rows, err := writeRepo.Update(ctx, 999, models.TicketClosed, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})
}
