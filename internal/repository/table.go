package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type TableRepository interface {
	CreateOrUpdate(ctx context.Context, table *entity.Table) error
	// GetAll - returns the stored snapshots of tables 1..count. Tables never stored are absent from the map.
	GetAll(ctx context.Context, count int) (map[int]*entity.Table, error)
	DeleteAll(ctx context.Context, count int) error
}

type dbTable struct {
	client *redis.Client
}

func NewTableRepository(client *redis.Client) TableRepository {
	return &dbTable{
		client: client,
	}
}

func tableKey(number int) string {
	return "table:" + strconv.Itoa(number)
}

func tableKeys(count int) []string {
	keys := make([]string, 0, count)
	for number := 1; number <= count; number++ {
		keys = append(keys, tableKey(number))
	}

	return keys
}

func (that *dbTable) CreateOrUpdate(ctx context.Context, table *entity.Table) error {
	tableJSON, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("could not marshal table: %w", err)
	}

	if err = that.client.Set(ctx, tableKey(table.Number), tableJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set table: %w", err)
	}

	return nil
}

func (that *dbTable) GetAll(ctx context.Context, count int) (map[int]*entity.Table, error) {
	tables := make(map[int]*entity.Table, count)
	if count < 1 {
		return tables, nil
	}

	values, err := that.client.MGet(ctx, tableKeys(count)...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tables: %w", err)
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var table entity.Table
		if err = json.Unmarshal([]byte(raw), &table); err != nil {
			return nil, fmt.Errorf("failed to unmarshal table %d: %w", i+1, err)
		}

		tables[i+1] = &table
	}

	return tables, nil
}

func (that *dbTable) DeleteAll(ctx context.Context, count int) error {
	if count < 1 {
		return nil
	}

	if err := that.client.Del(ctx, tableKeys(count)...).Err(); err != nil {
		return fmt.Errorf("failed to delete tables: %w", err)
	}

	return nil
}
