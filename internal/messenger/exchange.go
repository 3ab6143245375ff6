package messenger

import "github.com/streadway/amqp"

type exchange struct {
	Name        string
	Type        string
	Durable     bool
	AutoDeleted bool
	Internal    bool
	NoWait      bool
	Arguments   amqp.Table
}

var exchanges = map[string]exchange{
	"sale.settled":        topicExchange("sale.settled"),
	"collection.updated":  topicExchange("collection.updated"),
	"collection.disabled": topicExchange("collection.disabled"),
	"token.offered":       topicExchange("token.offered"),
	"offer.revoked":       topicExchange("offer.revoked"),
	"bid.entered":         topicExchange("bid.entered"),
	"bid.withdrawn":       topicExchange("bid.withdrawn"),
}

func topicExchange(name string) exchange {
	return exchange{
		Name:        name,
		Type:        "topic",
		Durable:     true,
		AutoDeleted: false,
		Internal:    false,
		NoWait:      true,
		Arguments:   nil,
	}
}
