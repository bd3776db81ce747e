package generating

import (
	"math/rand"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// Params parametriza uma geração: mesma seed e parâmetros produzem
// sempre a mesma sequência de registros, em qualquer execução.
type Params struct {
	Seed      int64
	StartDate time.Time
	Days      int
}

// Generator produz o conjunto sintético de vendas usado para o
// bootstrap de um banco vazio. A geração é pura: nenhum efeito
// colateral, ids não atribuídos (responsabilidade do banco).
type Generator struct {
	catalog domain.Catalog
}

func NewGenerator(catalog domain.Catalog) *Generator {
	return &Generator{catalog: catalog}
}

// Generate produz a sequência determinística de registros. A fonte de
// aleatoriedade é um PRNG semeado explicitamente — nunca a fonte
// global — para que fixtures de teste sejam reprodutíveis.
func (g *Generator) Generate(params Params) []domain.SaleRecord {
	rng := rand.New(rand.NewSource(params.Seed))

	records := make([]domain.SaleRecord, 0, params.Days*10)
	startDate := utils.TruncateToDay(params.StartDate)

	for day := 0; day < params.Days; day++ {
		date := startDate.AddDate(0, 0, day)

		// Quantidade de transações do dia, uniforme em [5, 15)
		dailySales := 5 + rng.Intn(10)

		for i := 0; i < dailySales; i++ {
			region := g.catalog.Regions[rng.Intn(len(g.catalog.Regions))]
			category := g.catalog.Categories[rng.Intn(len(g.catalog.Categories))]

			products := g.catalog.Products[category]
			product := products[rng.Intn(len(products))]

			// Quantidade uniforme em [1, 25); ruído uniforme em [-0.20, 0.20)
			quantity := 1 + rng.Intn(24)
			noise := -0.20 + rng.Float64()*0.40

			revenue := product.BasePrice * float64(quantity) * (1 + noise)
			if revenue < 0 {
				revenue = 0
			}

			records = append(records, domain.SaleRecord{
				Date:     date,
				Region:   region,
				Category: category,
				Product:  product.Name,
				Revenue:  utils.RoundWithTwoDecimalPlace(revenue),
				Quantity: quantity,
			})
		}
	}

	return records
}
