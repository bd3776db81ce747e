package domain

// Product associa um produto ao seu preço base de geração.
type Product struct {
	Name      string
	BasePrice float64
}

// Catalog é a configuração imutável usada pelo gerador de dados
// sintéticos: regiões, categorias e a tabela produto -> preço base de
// cada categoria. É injetado no gerador em vez de embutido como
// constante, para que os testes possam usar fixtures menores. As
// listas são fatias ordenadas, não mapas, para que os sorteios do
// gerador sejam reprodutíveis.
type Catalog struct {
	Regions    []string
	Categories []string
	Products   map[string][]Product
}

// DefaultCatalog retorna o catálogo padrão do conjunto sintético.
func DefaultCatalog() Catalog {
	return Catalog{
		Regions: []string{"Norte", "Nordeste", "Sul", "Sudeste", "Centro-Oeste"},
		Categories: []string{"Eletrônicos", "Roupas", "Alimentos", "Serviços"},
		Products: map[string][]Product{
			"Eletrônicos": {
				{Name: "Smartphone", BasePrice: 1200},
				{Name: "Laptop", BasePrice: 3500},
				{Name: "Tablet", BasePrice: 800},
			},
			"Roupas": {
				{Name: "Camiseta", BasePrice: 50},
				{Name: "Terno", BasePrice: 150},
				{Name: "Casaco", BasePrice: 300},
			},
			"Alimentos": {
				{Name: "Congelados", BasePrice: 40},
				{Name: "Bebidas", BasePrice: 15},
				{Name: "Limpeza", BasePrice: 25},
			},
			"Serviços": {
				{Name: "Consultoria", BasePrice: 1000},
				{Name: "Instalação", BasePrice: 400},
				{Name: "Suporte", BasePrice: 200},
			},
		},
	}
}
