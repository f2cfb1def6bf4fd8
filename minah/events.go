package minah

import "github.com/minahlabs/libminah-go/host"

// Event topics published by the contract.
const (
	TopicInvestorCreated    = "InvestorCreated"
	TopicChronometerStarted = "ChronometerStarted"
	TopicTokensBought       = "TokensBought"
	TopicTokensSold         = "TokensSold"
	TopicBatchTransfer      = "BatchTransfer"
)

func (c *Contract) emitInvestorCreated(investor host.Address) {
	c.env.Publish(TopicInvestorCreated, map[string]any{
		"investor": investor,
	})
}

func (c *Contract) emitChronometerStarted() {
	c.env.Publish(TopicChronometerStarted, nil)
}

func (c *Contract) emitTokensBought(from, to host.Address, amount uint32) {
	c.env.Publish(TopicTokensBought, map[string]any{
		"from":   from,
		"to":     to,
		"amount": amount,
	})
}

func (c *Contract) emitTokensSold(from, to host.Address, amount uint32) {
	c.env.Publish(TopicTokensSold, map[string]any{
		"from":   from,
		"to":     to,
		"amount": amount,
	})
}

func (c *Contract) emitBatchTransfer(from, to host.Address, tokenIDs []uint32) {
	c.env.Publish(TopicBatchTransfer, map[string]any{
		"from":      from,
		"to":        to,
		"token_ids": tokenIDs,
	})
}
