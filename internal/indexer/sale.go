package indexer

import (
	"github.com/ZilDuck/nft-marketplace/internal/elastic_search"
	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"go.uber.org/zap"
)

// SaleIndexer mirrors settled sales into the search index. It is wired as a
// listener on the settlement event, so indexing never sits on the engine's
// critical path.
type SaleIndexer interface {
	IndexSale(msg interface{})
}

type saleIndexer struct {
	elastic elastic_search.Index
}

func NewSaleIndexer(elastic elastic_search.Index) SaleIndexer {
	return saleIndexer{elastic}
}

func (i saleIndexer) IndexSale(msg interface{}) {
	sale, ok := msg.(entity.Sale)
	if !ok {
		zap.L().Error("SaleIndexer: Invalid sale event payload")
		return
	}

	zap.L().With(
		zap.String("contract", sale.Contract),
		zap.Uint64("tokenId", sale.TokenId),
		zap.String("cost", sale.Cost),
	).Info("SaleIndexer: Index sale")

	i.elastic.Save(elastic_search.SaleIndex.Get(), sale)
}
