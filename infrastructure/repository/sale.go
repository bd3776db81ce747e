package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const salesTable = "sales"

// Lotes de inserção pequenos o suficiente para o limite de variáveis
// de ambos os drivers.
const bulkInsertChunkSize = 200

// SaleRepository é a tabela durável de registros de venda: criação de
// schema, verificação de vazio, inserção em lote e varredura completa.
type SaleRepository interface {
	EnsureSchema(ctx context.Context) error
	IsEmpty(ctx context.Context) (bool, error)
	BulkInsert(ctx context.Context, records []domain.SaleRecord) (int64, error)
	ScanAll(ctx context.Context) ([]domain.SaleRecord, error)
}

type saleRepository struct {
	conn database.Conn
}

func NewSaleRepository(conn database.Conn) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// EnsureSchema cria a tabela de vendas caso não exista. O id é
// atribuído pelo banco na inserção e nunca reaproveitado.
func (r *saleRepository) EnsureSchema(ctx context.Context) error {
	idColumn := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	if r.conn.Driver() == database.DriverPostgres {
		idColumn = "id BIGSERIAL PRIMARY KEY"
	}

	ddl := `CREATE TABLE IF NOT EXISTS ` + salesTable + ` (
		` + idColumn + `,
		date TEXT NOT NULL,
		region TEXT NOT NULL,
		category TEXT NOT NULL,
		product TEXT NOT NULL,
		revenue REAL NOT NULL,
		quantity INTEGER NOT NULL
	)`

	if _, err := r.conn.ExecContext(ctx, ddl); err != nil {
		return errors.Wrap(err, "erro ao criar tabela de vendas")
	}

	return nil
}

func (r *saleRepository) IsEmpty(ctx context.Context) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(salesTable).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "erro ao construir a query")
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, errors.Wrap(err, "erro ao contar registros de venda")
	}

	return count == 0, nil
}

// BulkInsert insere os registros em uma única transação, em lotes. Os
// ids dos registros de entrada são ignorados; o banco atribui os seus.
func (r *saleRepository) BulkInsert(ctx context.Context, records []domain.SaleRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	var inserted int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(records); start += bulkInsertChunkSize {
			end := start + bulkInsertChunkSize
			if end > len(records) {
				end = len(records)
			}

			builder := squirrel.
				Insert(salesTable).
				Columns("date", "region", "category", "product", "revenue", "quantity").
				PlaceholderFormat(r.conn.Placeholder())

			for _, record := range records[start:end] {
				builder = builder.Values(
					record.Date.Format(time.DateOnly),
					record.Region,
					record.Category,
					record.Product,
					record.Revenue,
					record.Quantity,
				)
			}

			query, args, err := builder.ToSql()
			if err != nil {
				return errors.Wrap(err, "erro ao construir a query")
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return errors.Wrap(err, "erro ao inserir lote de vendas")
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return errors.Wrap(err, "erro ao obter número de linhas afetadas")
			}
			inserted += affected
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *saleRepository) ScanAll(ctx context.Context) ([]domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select("id", "date", "region", "category", "product", "revenue", "quantity").
		From(salesTable).
		OrderBy("id ASC").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	records := make([]domain.SaleRecord, 0)
	for rows.Next() {
		var record domain.SaleRecord
		var dateStr string

		if err := rows.Scan(
			&record.ID,
			&dateStr,
			&record.Region,
			&record.Category,
			&record.Product,
			&record.Revenue,
			&record.Quantity,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear registro de venda")
		}

		date, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao converter data")
		}
		record.Date = date

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return records, nil
}
