package interaction

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/campaign-client/pkg/ethereum/contracts"
)

// Schedule used for campaigns created by the client
const (
	StartDelay     = 10 * time.Second
	CampaignLength = 365 * 24 * time.Hour
	FirstMilestone = 30 * 24 * time.Hour
	LastMilestone  = 60 * 24 * time.Hour

	// TotalBps is the sum every segment schedule must reach
	TotalBps = 10000
)

var (
	ErrNoSegments          = errors.New("campaign has no payout segments")
	ErrSegmentPercentage   = errors.New("segment percentage out of range")
	ErrSegmentSum          = errors.New("segment percentages do not sum to 10000 bps")
	ErrMilestoneOrder      = errors.New("milestones are not strictly increasing")
	ErrMilestoneOutOfRange = errors.New("milestone outside the campaign window")
	ErrCampaignWindow      = errors.New("campaign ends before it starts")
	ErrTargetAmount        = errors.New("target amount must be greater than zero")
)

// BuildParams computes the creation parameters for a campaign opening shortly after now.
// The payout is split evenly between two milestones.
func BuildParams(
	now time.Time,
	beneficiary common.Address,
	asset common.Address,
	targetAmount *big.Int,
	metadata []byte,
) contracts.CampaignFactoryCreateCampaignParams {
	start := now.Add(StartDelay)
	end := start.Add(CampaignLength)

	if metadata == nil {
		metadata = []byte{}
	}

	return contracts.CampaignFactoryCreateCampaignParams{
		StartTime:     uint64(start.Unix()),
		EndTime:       uint64(end.Unix()),
		CliffDuration: 0,
		Beneficiary:   beneficiary,
		TargetAmount:  targetAmount,
		Asset:         asset,
		Metadata:      metadata,
		Segments: []contracts.CampaignFactorySegment{
			{PercentageBps: big.NewInt(TotalBps / 2), Milestone: uint64(start.Add(FirstMilestone).Unix())},
			{PercentageBps: big.NewInt(TotalBps / 2), Milestone: uint64(start.Add(LastMilestone).Unix())},
		},
	}
}

// ValidateParams checks the segment schedule and campaign window
func ValidateParams(p contracts.CampaignFactoryCreateCampaignParams) error {
	if p.StartTime >= p.EndTime {
		return fmt.Errorf("%w: start %d, end %d", ErrCampaignWindow, p.StartTime, p.EndTime)
	}
	if p.TargetAmount == nil || p.TargetAmount.Sign() <= 0 {
		return ErrTargetAmount
	}
	if len(p.Segments) == 0 {
		return ErrNoSegments
	}

	sum := new(big.Int)
	var prev uint64
	for i, s := range p.Segments {
		if s.PercentageBps == nil || s.PercentageBps.Sign() < 0 || s.PercentageBps.Cmp(big.NewInt(TotalBps)) > 0 {
			return fmt.Errorf("%w: segment %d", ErrSegmentPercentage, i)
		}
		sum.Add(sum, s.PercentageBps)

		if s.Milestone < p.StartTime || s.Milestone > p.EndTime {
			return fmt.Errorf("%w: segment %d at %d", ErrMilestoneOutOfRange, i, s.Milestone)
		}
		if i > 0 && s.Milestone <= prev {
			return fmt.Errorf("%w: segment %d at %d", ErrMilestoneOrder, i, s.Milestone)
		}
		prev = s.Milestone
	}

	if sum.Cmp(big.NewInt(TotalBps)) != 0 {
		return fmt.Errorf("%w: got %s", ErrSegmentSum, sum)
	}
	return nil
}
