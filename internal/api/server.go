package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/ZilDuck/nft-marketplace/internal/market"
	"github.com/ZilDuck/nft-marketplace/internal/metadata"
	"github.com/ZilDuck/nft-marketplace/internal/registry"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Server struct {
	market   market.Market
	metadata metadata.Service
}

func NewServer(market market.Market, metadata metadata.Service) Server {
	return Server{market, metadata}
}

func (s Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleHomepage).Methods("GET")
	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	r.HandleFunc("/collection/{contractAddr}", s.handleGetCollection).Methods("GET")
	r.HandleFunc("/collection/{contractAddr}/metadata", s.handleGetCollectionMetadata).Methods("GET")
	r.HandleFunc("/collection/{contractAddr}", s.handleSetCollection).Methods("PUT")
	r.HandleFunc("/collection/{contractAddr}", s.handleDisableCollection).Methods("DELETE")

	r.HandleFunc("/offer/{contractAddr}/{tokenId}", s.handleGetOffer).Methods("GET")
	r.HandleFunc("/offer/{contractAddr}/{tokenId}", s.handleOfferForSale).Methods("PUT")
	r.HandleFunc("/offer/{contractAddr}/{tokenId}", s.handleRevokeOffer).Methods("DELETE")
	r.HandleFunc("/offer/{contractAddr}/{tokenId}/accept", s.handleAcceptOffer).Methods("POST")

	r.HandleFunc("/bid/{contractAddr}/{tokenId}", s.handleGetBid).Methods("GET")
	r.HandleFunc("/bid/{contractAddr}/{tokenId}", s.handlePlaceBid).Methods("PUT")
	r.HandleFunc("/bid/{contractAddr}/{tokenId}", s.handleWithdrawBid).Methods("DELETE")
	r.HandleFunc("/bid/{contractAddr}/{tokenId}/accept", s.handleAcceptBid).Methods("POST")

	r.HandleFunc("/balance/{address}", s.handleGetBalance).Methods("GET")
	r.HandleFunc("/withdraw", s.handleWithdraw).Methods("POST")

	r.NotFoundHandler = notFoundHandler()

	return r
}

type setCollectionRequest struct {
	Caller         string `json:"caller"`
	QuantityModel  bool   `json:"quantityModel"`
	RoyaltyPercent uint   `json:"royaltyPercent"`
	MetadataUri    string `json:"metadataUri"`
}

type offerRequest struct {
	Caller     string `json:"caller"`
	MinValue   string `json:"minValue"`
	OnlySellTo string `json:"onlySellTo"`
}

type bidRequest struct {
	Caller string `json:"caller"`
	Value  string `json:"value"`
}

type acceptOfferRequest struct {
	Caller  string `json:"caller"`
	Payment string `json:"payment"`
}

type acceptBidRequest struct {
	Caller   string `json:"caller"`
	MinPrice string `json:"minPrice"`
}

type callerRequest struct {
	Caller string `json:"caller"`
}

type withdrawResponse struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

type balanceResponse struct {
	Address string `json:"address"`
	Pending string `json:"pending"`
}

func (s Server) handleHomepage(w http.ResponseWriter, r *http.Request) {
	_, _ = fmt.Fprintf(w, "NFT Marketplace")
}

func (s Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}

func (s Server) handleGetCollection(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]

	collection, err := s.market.GetCollection(contractAddr)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJson(w, collection)
}

func (s Server) handleGetCollectionMetadata(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]

	collection, err := s.market.GetCollection(contractAddr)
	if err != nil {
		writeError(w, err)
		return
	}
	if !collection.Active || collection.MetadataUri == "" {
		http.Error(w, "Collection metadata not available", http.StatusNotFound)
		return
	}

	md, err := s.metadata.GetCollectionMetadata(collection)
	if err != nil {
		zap.L().With(zap.Error(err), zap.String("contract", contractAddr)).Warn("Api: Collection metadata not available")
		http.Error(w, "Collection metadata not available", http.StatusNotFound)
		return
	}

	writeJson(w, md)
}

func (s Server) handleSetCollection(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]

	var req setCollectionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.market.SetCollection(req.Caller, contractAddr, req.QuantityModel, req.RoyaltyPercent, req.MetadataUri); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s Server) handleDisableCollection(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]

	var req callerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.market.DisableCollection(req.Caller, contractAddr); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s Server) handleGetOffer(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]
	tokenId, err := getTokenId(r)
	if err != nil {
		http.Error(w, "Invalid token id", http.StatusBadRequest)
		return
	}

	offer, err := s.market.GetOffer(contractAddr, tokenId)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJson(w, offer)
}

func (s Server) handleOfferForSale(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]
	tokenId, err := getTokenId(r)
	if err != nil {
		http.Error(w, "Invalid token id", http.StatusBadRequest)
		return
	}

	var req offerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	minValue, ok := parseAmount(req.MinValue)
	if !ok {
		http.Error(w, "Invalid amount", http.StatusBadRequest)
		return
	}

	if err := s.market.OfferForSale(req.Caller, contractAddr, tokenId, minValue, req.OnlySellTo); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s Server) handleRevokeOffer(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]
	tokenId, err := getTokenId(r)
	if err != nil {
		http.Error(w, "Invalid token id", http.StatusBadRequest)
		return
	}

	var req callerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.market.RevokeOffer(req.Caller, contractAddr, tokenId); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s Server) handleAcceptOffer(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]
	tokenId, err := getTokenId(r)
	if err != nil {
		http.Error(w, "Invalid token id", http.StatusBadRequest)
		return
	}

	var req acceptOfferRequest
	if !decodeBody(w, r, &req) {
		return
	}

	payment, ok := parseAmount(req.Payment)
	if !ok {
		http.Error(w, "Invalid amount", http.StatusBadRequest)
		return
	}

	if err := s.market.AcceptOffer(req.Caller, contractAddr, tokenId, payment); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s Server) handleGetBid(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]
	tokenId, err := getTokenId(r)
	if err != nil {
		http.Error(w, "Invalid token id", http.StatusBadRequest)
		return
	}

	bid, err := s.market.GetBid(contractAddr, tokenId)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJson(w, bid)
}

func (s Server) handlePlaceBid(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]
	tokenId, err := getTokenId(r)
	if err != nil {
		http.Error(w, "Invalid token id", http.StatusBadRequest)
		return
	}

	var req bidRequest
	if !decodeBody(w, r, &req) {
		return
	}

	value, ok := parseAmount(req.Value)
	if !ok {
		http.Error(w, "Invalid amount", http.StatusBadRequest)
		return
	}

	if err := s.market.PlaceBid(req.Caller, contractAddr, tokenId, value); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s Server) handleWithdrawBid(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]
	tokenId, err := getTokenId(r)
	if err != nil {
		http.Error(w, "Invalid token id", http.StatusBadRequest)
		return
	}

	var req callerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.market.WithdrawBid(req.Caller, contractAddr, tokenId); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s Server) handleAcceptBid(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]
	tokenId, err := getTokenId(r)
	if err != nil {
		http.Error(w, "Invalid token id", http.StatusBadRequest)
		return
	}

	var req acceptBidRequest
	if !decodeBody(w, r, &req) {
		return
	}

	minPrice, ok := parseAmount(req.MinPrice)
	if !ok {
		http.Error(w, "Invalid amount", http.StatusBadRequest)
		return
	}

	if err := s.market.AcceptBid(req.Caller, contractAddr, tokenId, minPrice); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s Server) handleGetBalance(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]

	balance, err := s.market.PendingBalance(address)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJson(w, balanceResponse{Address: address, Pending: balance.String()})
}

func (s Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	var req callerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	paid, err := s.market.Withdraw(req.Caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJson(w, withdrawResponse{Address: req.Caller, Amount: paid.String()})
}

func getTokenId(r *http.Request) (uint64, error) {
	tokenId, ok := mux.Vars(r)["tokenId"]
	if !ok {
		return 0, errors.New("invalid parameters")
	}

	return strconv.ParseUint(tokenId, 10, 64)
}

func parseAmount(raw string) (*big.Int, bool) {
	if raw == "" {
		return new(big.Int), true
	}

	return new(big.Int).SetString(raw, 10)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}

	return true
}

func writeJson(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().With(zap.Error(err)).Error("Api: Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, market.ErrInvalidAmount),
		errors.Is(err, market.ErrInvalidRoyalty),
		errors.Is(err, market.ErrBidTooLow),
		errors.Is(err, market.ErrInsufficientPayment):
		return http.StatusBadRequest
	case errors.Is(err, market.ErrUnauthorized),
		errors.Is(err, market.ErrNotOwner),
		errors.Is(err, market.ErrNotBidder),
		errors.Is(err, market.ErrNotApproved),
		errors.Is(err, market.ErrExclusiveBuyer),
		errors.Is(err, market.ErrSelfBid):
		return http.StatusForbidden
	case errors.Is(err, market.ErrNotActive),
		errors.Is(err, market.ErrNotForSale),
		errors.Is(err, market.ErrNoBid),
		errors.Is(err, market.ErrNothingToWithdraw),
		errors.Is(err, registry.ErrUnknownToken):
		return http.StatusNotFound
	case errors.Is(err, market.ErrStaleSeller):
		return http.StatusConflict
	case errors.Is(err, market.ErrTransferFailed),
		errors.Is(err, market.ErrPayoutFailed):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

func notFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		_, _ = fmt.Fprintf(w, "Page not found")
	})
}
