package main

import (
	"os"
	"strconv"

	"github.com/ZilDuck/nft-marketplace/internal/config"
	"github.com/ZilDuck/nft-marketplace/pkg/market"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var client *market.Client

func main() {
	config.Init("cli")

	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "node", Value: "http://localhost:8080", Usage: "Marketplace node to talk to"},
		},
		Before: func(c *cli.Context) error {
			client = market.NewClient(c.String("node"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "collection",
				Usage:  "Show a collection's marketplace configuration",
				Action: getCollection,
			},
			{
				Name:   "setCollection",
				Usage:  "Enable or reconfigure a collection",
				Action: setCollection,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "caller", Required: true, Usage: "Registry administrator address"},
					&cli.BoolFlag{Name: "quantity", Value: false, Usage: "Collection uses the quantity ownership model"},
					&cli.UintFlag{Name: "royalty", Value: 0, Usage: "Royalty percentage (0-100)"},
					&cli.StringFlag{Name: "metadata", Value: "", Usage: "Collection metadata uri"},
				},
			},
			{
				Name:   "disableCollection",
				Usage:  "Disable a collection",
				Action: disableCollection,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "caller", Required: true, Usage: "Registry administrator address"},
				},
			},
			{
				Name:   "offer",
				Usage:  "Show the standing offer for a token",
				Action: getOffer,
			},
			{
				Name:   "list",
				Usage:  "Offer a token for sale",
				Action: offerForSale,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "caller", Required: true, Usage: "Token owner address"},
					&cli.StringFlag{Name: "min", Value: "0", Usage: "Minimum acceptable payment"},
					&cli.StringFlag{Name: "only", Value: "", Usage: "Restrict the sale to a single buyer"},
				},
			},
			{
				Name:   "revoke",
				Usage:  "Take a token off the market",
				Action: revokeOffer,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "caller", Required: true, Usage: "Token owner address"},
				},
			},
			{
				Name:   "buy",
				Usage:  "Accept a standing offer",
				Action: acceptOffer,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "caller", Required: true, Usage: "Buyer address"},
					&cli.StringFlag{Name: "payment", Required: true, Usage: "Payment amount"},
				},
			},
			{
				Name:   "bid",
				Usage:  "Show the standing bid for a token",
				Action: getBid,
			},
			{
				Name:   "placeBid",
				Usage:  "Enter a bid on a token",
				Action: placeBid,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "caller", Required: true, Usage: "Bidder address"},
					&cli.StringFlag{Name: "value", Required: true, Usage: "Bid value"},
				},
			},
			{
				Name:   "withdrawBid",
				Usage:  "Withdraw a standing bid",
				Action: withdrawBid,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "caller", Required: true, Usage: "Bidder address"},
				},
			},
			{
				Name:   "sell",
				Usage:  "Accept the standing bid on a token",
				Action: acceptBid,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "caller", Required: true, Usage: "Token owner address"},
					&cli.StringFlag{Name: "min", Value: "0", Usage: "Minimum acceptable bid value"},
				},
			},
			{
				Name:   "balance",
				Usage:  "Show an address's pending balance",
				Action: getBalance,
			},
			{
				Name:   "withdraw",
				Usage:  "Withdraw the caller's full pending balance",
				Action: withdraw,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "caller", Required: true, Usage: "Address to pay out"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to start CLI")
	}
}

func getCollection(c *cli.Context) error {
	collection, err := client.GetCollection(c.Args().First())
	if err != nil {
		return err
	}

	zap.S().Infof("Collection %s active=%t quantity=%t royalty=%d metadata=%s",
		collection.Contract, collection.Active, collection.QuantityModel, collection.RoyaltyPercent, collection.MetadataUri)

	return nil
}

func setCollection(c *cli.Context) error {
	return client.SetCollection(c.String("caller"), c.Args().First(), c.Bool("quantity"), c.Uint("royalty"), c.String("metadata"))
}

func disableCollection(c *cli.Context) error {
	return client.DisableCollection(c.String("caller"), c.Args().First())
}

func getOffer(c *cli.Context) error {
	contract, tokenId, err := tokenArgs(c)
	if err != nil {
		return err
	}

	offer, err := client.GetOffer(contract, tokenId)
	if err != nil {
		return err
	}

	zap.S().Infof("Offer %s/%d forSale=%t seller=%s min=%s only=%s",
		offer.Contract, offer.TokenId, offer.ForSale, offer.Seller, offer.MinValue, offer.OnlySellTo)

	return nil
}

func offerForSale(c *cli.Context) error {
	contract, tokenId, err := tokenArgs(c)
	if err != nil {
		return err
	}

	return client.OfferForSale(c.String("caller"), contract, tokenId, c.String("min"), c.String("only"))
}

func revokeOffer(c *cli.Context) error {
	contract, tokenId, err := tokenArgs(c)
	if err != nil {
		return err
	}

	return client.RevokeOffer(c.String("caller"), contract, tokenId)
}

func acceptOffer(c *cli.Context) error {
	contract, tokenId, err := tokenArgs(c)
	if err != nil {
		return err
	}

	return client.AcceptOffer(c.String("caller"), contract, tokenId, c.String("payment"))
}

func getBid(c *cli.Context) error {
	contract, tokenId, err := tokenArgs(c)
	if err != nil {
		return err
	}

	bid, err := client.GetBid(contract, tokenId)
	if err != nil {
		return err
	}

	zap.S().Infof("Bid %s/%d hasBid=%t bidder=%s value=%s",
		bid.Contract, bid.TokenId, bid.HasBid, bid.Bidder, bid.Value)

	return nil
}

func placeBid(c *cli.Context) error {
	contract, tokenId, err := tokenArgs(c)
	if err != nil {
		return err
	}

	return client.PlaceBid(c.String("caller"), contract, tokenId, c.String("value"))
}

func withdrawBid(c *cli.Context) error {
	contract, tokenId, err := tokenArgs(c)
	if err != nil {
		return err
	}

	return client.WithdrawBid(c.String("caller"), contract, tokenId)
}

func acceptBid(c *cli.Context) error {
	contract, tokenId, err := tokenArgs(c)
	if err != nil {
		return err
	}

	return client.AcceptBid(c.String("caller"), contract, tokenId, c.String("min"))
}

func getBalance(c *cli.Context) error {
	balance, err := client.GetBalance(c.Args().First())
	if err != nil {
		return err
	}

	zap.S().Infof("Balance %s pending=%s", balance.Address, balance.Pending)

	return nil
}

func withdraw(c *cli.Context) error {
	withdrawal, err := client.Withdraw(c.String("caller"))
	if err != nil {
		return err
	}

	zap.S().Infof("Withdrawal %s amount=%s", withdrawal.Address, withdrawal.Amount)

	return nil
}

func tokenArgs(c *cli.Context) (string, uint64, error) {
	contract := c.Args().Get(0)
	tokenId, err := strconv.ParseUint(c.Args().Get(1), 10, 64)
	if err != nil {
		return "", 0, err
	}

	return contract, tokenId, nil
}
