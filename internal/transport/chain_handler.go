package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/powledger/internal/model"
	"github.com/goodnatureofminers/powledger/internal/wire"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

// ChainReader is the read side of the ledger.
type ChainReader interface {
	Tail() (model.Block, int)
	Block(i int) (model.Block, bool)
	Blocks(from, limit int) []model.Block
}

type chainSummary struct {
	Length int    `json:"length"`
	Height uint32 `json:"height"`
	Tip    string `json:"tip"`
}

type blocksPage struct {
	Blocks []wire.Message `json:"blocks"`
	Next   int            `json:"next"`
}

// ChainHandler serves a read-only JSON view of the chain.
type ChainHandler struct {
	chain  ChainReader
	logger *zap.Logger
	mux    *http.ServeMux
}

// NewChainHandler returns a handler rooted at /v1/chain.
func NewChainHandler(chain ChainReader, logger *zap.Logger) *ChainHandler {
	h := &ChainHandler{chain: chain, logger: logger, mux: http.NewServeMux()}
	h.mux.HandleFunc("GET /v1/chain", h.summary)
	h.mux.HandleFunc("GET /v1/chain/blocks", h.blocks)
	h.mux.HandleFunc("GET /v1/chain/blocks/{index}", h.block)
	return h
}

// ServeHTTP implements http.Handler.
func (h *ChainHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *ChainHandler) summary(w http.ResponseWriter, _ *http.Request) {
	tip, length := h.chain.Tail()
	h.write(w, http.StatusOK, chainSummary{Length: length, Height: tip.Index, Tip: tip.Hash})
}

func (h *ChainHandler) blocks(w http.ResponseWriter, r *http.Request) {
	from, err := queryInt(r, "from", 0)
	if err != nil || from < 0 {
		http.Error(w, "invalid from", http.StatusBadRequest)
		return
	}
	limit, err := queryInt(r, "limit", defaultPageSize)
	if err != nil || limit <= 0 {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}
	limit = min(limit, maxPageSize)

	blocks := h.chain.Blocks(from, limit)
	page := blocksPage{Blocks: make([]wire.Message, 0, len(blocks)), Next: from + len(blocks)}
	for _, b := range blocks {
		page.Blocks = append(page.Blocks, wire.ToMessage(b))
	}
	h.write(w, http.StatusOK, page)
}

func (h *ChainHandler) block(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return
	}
	b, ok := h.chain.Block(index)
	if !ok {
		http.Error(w, "block not found", http.StatusNotFound)
		return
	}
	h.write(w, http.StatusOK, wire.ToMessage(b))
}

func (h *ChainHandler) write(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write chain response failed", zap.Error(err))
	}
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
