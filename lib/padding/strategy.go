package padding

// Strategy pads and unpads whole messages, so a cipher layer can carry one
// value instead of a scheme plus its options.
type Strategy interface {
	AddPadding(message []byte) []byte
	RemovePadding(message []byte) []byte
}

// BlockStrategy binds a padding scheme to its block length, random strategy
// and tail zero mode.
type BlockStrategy struct {
	Scheme   Scheme
	BlockLen int
	Random   RandomStrategy
	TailZero TailZeroMode
}

// NewBlockStrategy returns a BlockStrategy with the default random strategy
// and tail zero mode.
func NewBlockStrategy(scheme Scheme, blockLen int) *BlockStrategy {
	return &BlockStrategy{
		Scheme:   scheme,
		BlockLen: blockLen,
		Random:   RandomFast,
		TailZero: TailZeroRemoveAll,
	}
}

func (p *BlockStrategy) AddPadding(message []byte) []byte {
	return Pad(p.Scheme, message, p.BlockLen, p.Random)
}

func (p *BlockStrategy) RemovePadding(message []byte) []byte {
	return UnpadWith(message, p.TailZero)
}
