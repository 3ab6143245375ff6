package market

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

// Client is the public HTTP client for a marketplace node. It carries its own
// wire types so consumers do not depend on the node's internals.
type Client struct {
	baseUrl string
	http    *retryablehttp.Client
}

type Collection struct {
	Contract       string `json:"contract"`
	Active         bool   `json:"active"`
	QuantityModel  bool   `json:"quantityModel"`
	RoyaltyPercent uint   `json:"royaltyPercent"`
	MetadataUri    string `json:"metadataUri"`
}

type Offer struct {
	Contract   string `json:"contract"`
	TokenId    uint64 `json:"tokenId"`
	ForSale    bool   `json:"forSale"`
	Seller     string `json:"seller"`
	MinValue   string `json:"minValue"`
	OnlySellTo string `json:"onlySellTo"`
}

type Bid struct {
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
	HasBid   bool   `json:"hasBid"`
	Bidder   string `json:"bidder"`
	Value    string `json:"value"`
}

type Balance struct {
	Address string `json:"address"`
	Pending string `json:"pending"`
}

type Withdrawal struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

func NewClient(baseUrl string) *Client {
	client := retryablehttp.NewClient()
	client.Logger = nil

	return &Client{baseUrl: baseUrl, http: client}
}

func (c *Client) GetCollection(contract string) (*Collection, error) {
	var collection Collection
	if err := c.get(fmt.Sprintf("/collection/%s", contract), &collection); err != nil {
		return nil, err
	}

	return &collection, nil
}

func (c *Client) GetCollectionMetadata(contract string) (map[string]interface{}, error) {
	var md map[string]interface{}
	if err := c.get(fmt.Sprintf("/collection/%s/metadata", contract), &md); err != nil {
		return nil, err
	}

	return md, nil
}

func (c *Client) SetCollection(caller, contract string, quantityModel bool, royaltyPercent uint, metadataUri string) error {
	return c.send("PUT", fmt.Sprintf("/collection/%s", contract), map[string]interface{}{
		"caller":         caller,
		"quantityModel":  quantityModel,
		"royaltyPercent": royaltyPercent,
		"metadataUri":    metadataUri,
	}, nil)
}

func (c *Client) DisableCollection(caller, contract string) error {
	return c.send("DELETE", fmt.Sprintf("/collection/%s", contract), map[string]interface{}{
		"caller": caller,
	}, nil)
}

func (c *Client) GetOffer(contract string, tokenId uint64) (*Offer, error) {
	var offer Offer
	if err := c.get(fmt.Sprintf("/offer/%s/%d", contract, tokenId), &offer); err != nil {
		return nil, err
	}

	return &offer, nil
}

func (c *Client) OfferForSale(caller, contract string, tokenId uint64, minValue, onlySellTo string) error {
	return c.send("PUT", fmt.Sprintf("/offer/%s/%d", contract, tokenId), map[string]interface{}{
		"caller":     caller,
		"minValue":   minValue,
		"onlySellTo": onlySellTo,
	}, nil)
}

func (c *Client) RevokeOffer(caller, contract string, tokenId uint64) error {
	return c.send("DELETE", fmt.Sprintf("/offer/%s/%d", contract, tokenId), map[string]interface{}{
		"caller": caller,
	}, nil)
}

func (c *Client) AcceptOffer(caller, contract string, tokenId uint64, payment string) error {
	return c.send("POST", fmt.Sprintf("/offer/%s/%d/accept", contract, tokenId), map[string]interface{}{
		"caller":  caller,
		"payment": payment,
	}, nil)
}

func (c *Client) GetBid(contract string, tokenId uint64) (*Bid, error) {
	var bid Bid
	if err := c.get(fmt.Sprintf("/bid/%s/%d", contract, tokenId), &bid); err != nil {
		return nil, err
	}

	return &bid, nil
}

func (c *Client) PlaceBid(caller, contract string, tokenId uint64, value string) error {
	return c.send("PUT", fmt.Sprintf("/bid/%s/%d", contract, tokenId), map[string]interface{}{
		"caller": caller,
		"value":  value,
	}, nil)
}

func (c *Client) WithdrawBid(caller, contract string, tokenId uint64) error {
	return c.send("DELETE", fmt.Sprintf("/bid/%s/%d", contract, tokenId), map[string]interface{}{
		"caller": caller,
	}, nil)
}

func (c *Client) AcceptBid(caller, contract string, tokenId uint64, minPrice string) error {
	return c.send("POST", fmt.Sprintf("/bid/%s/%d/accept", contract, tokenId), map[string]interface{}{
		"caller":   caller,
		"minPrice": minPrice,
	}, nil)
}

func (c *Client) GetBalance(address string) (*Balance, error) {
	var balance Balance
	if err := c.get(fmt.Sprintf("/balance/%s", address), &balance); err != nil {
		return nil, err
	}

	return &balance, nil
}

func (c *Client) Withdraw(caller string) (*Withdrawal, error) {
	var withdrawal Withdrawal
	if err := c.send("POST", "/withdraw", map[string]interface{}{"caller": caller}, &withdrawal); err != nil {
		return nil, err
	}

	return &withdrawal, nil
}

func (c *Client) get(path string, v interface{}) error {
	resp, err := c.http.Get(c.baseUrl + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return responseError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

func (c *Client) send(method, path string, body map[string]interface{}, v interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequest(method, c.baseUrl+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return responseError(resp)
	}

	if v == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

func responseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	if len(body) == 0 {
		return fmt.Errorf("marketplace: %s", resp.Status)
	}

	return errors.New("marketplace: " + string(bytes.TrimSpace(body)))
}
