// Package storage реализует хранилище данных на основе PostgreSQL.
// Четыре независимые таблицы (users, subscriptions, contact_messages,
// companies) обслуживаются простыми операциями insert/filter/update:
// без join'ов, без многошаговых транзакций — каждая операция атомарна
// на уровне одного запроса.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotFound возвращается методами чтения и обновления, когда запись
// с указанным идентификатором отсутствует.
var ErrNotFound = errors.New("record not found")

// Лимиты выборок: административные списки обрезаются на 1000 записях,
// пользовательские — на 100.
const (
	AdminListLimit = 1000
	UserListLimit  = 100
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы со всеми коллекциями платформы.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'users'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table users missing or query error: %w", err)
	}
	return nil
}
