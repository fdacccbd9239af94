package interaction

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/campaign-client/pkg/ethereum/contracts"
)

var (
	testBeneficiary = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	testAsset       = common.HexToAddress("0x7b4e9b59dc4280de59ec64a90ba666a887967279")
)

func target20() *big.Int {
	v, _ := new(big.Int).SetString("20000000000000000000", 10)
	return v
}

func TestBuildParams_FixedSchedule(t *testing.T) {
	now := time.Unix(1700000000, 0)

	p := BuildParams(now, testBeneficiary, testAsset, target20(), nil)

	assert.Equal(t, uint64(1700000010), p.StartTime)
	assert.Equal(t, uint64(1700000010+365*86400), p.EndTime)
	assert.Equal(t, uint64(0), p.CliffDuration)
	assert.Equal(t, testBeneficiary, p.Beneficiary)
	assert.Equal(t, testAsset, p.Asset)
	assert.Equal(t, "20000000000000000000", p.TargetAmount.String())
	assert.NotNil(t, p.Metadata)
	assert.Empty(t, p.Metadata)

	require.Len(t, p.Segments, 2)
	assert.Equal(t, int64(5000), p.Segments[0].PercentageBps.Int64())
	assert.Equal(t, int64(5000), p.Segments[1].PercentageBps.Int64())
	assert.Equal(t, p.StartTime+30*86400, p.Segments[0].Milestone)
	assert.Equal(t, p.StartTime+60*86400, p.Segments[1].Milestone)

	require.NoError(t, ValidateParams(p))
}

func TestBuildParams_AlwaysValid(t *testing.T) {
	for _, now := range []time.Time{
		time.Unix(0, 0),
		time.Unix(1700000000, 0),
		time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC),
		time.Now(),
	} {
		p := BuildParams(now, testBeneficiary, testAsset, big.NewInt(1), []byte(`{"title":"x"}`))
		require.NoError(t, ValidateParams(p), "now=%s", now)
	}
}

func TestValidateParams_Rejects(t *testing.T) {
	base := func() contracts.CampaignFactoryCreateCampaignParams {
		return BuildParams(time.Unix(1700000000, 0), testBeneficiary, testAsset, target20(), nil)
	}

	tests := []struct {
		name   string
		mutate func(p *contracts.CampaignFactoryCreateCampaignParams)
		want   error
	}{
		{
			name:   "no segments",
			mutate: func(p *contracts.CampaignFactoryCreateCampaignParams) { p.Segments = nil },
			want:   ErrNoSegments,
		},
		{
			name: "sum below total",
			mutate: func(p *contracts.CampaignFactoryCreateCampaignParams) {
				p.Segments[1].PercentageBps = big.NewInt(4999)
			},
			want: ErrSegmentSum,
		},
		{
			name: "percentage above total",
			mutate: func(p *contracts.CampaignFactoryCreateCampaignParams) {
				p.Segments[0].PercentageBps = big.NewInt(10001)
			},
			want: ErrSegmentPercentage,
		},
		{
			name: "negative percentage",
			mutate: func(p *contracts.CampaignFactoryCreateCampaignParams) {
				p.Segments[0].PercentageBps = big.NewInt(-1)
			},
			want: ErrSegmentPercentage,
		},
		{
			name: "equal milestones",
			mutate: func(p *contracts.CampaignFactoryCreateCampaignParams) {
				p.Segments[1].Milestone = p.Segments[0].Milestone
			},
			want: ErrMilestoneOrder,
		},
		{
			name: "decreasing milestones",
			mutate: func(p *contracts.CampaignFactoryCreateCampaignParams) {
				p.Segments[0].Milestone, p.Segments[1].Milestone = p.Segments[1].Milestone, p.Segments[0].Milestone
			},
			want: ErrMilestoneOrder,
		},
		{
			name: "milestone after end",
			mutate: func(p *contracts.CampaignFactoryCreateCampaignParams) {
				p.Segments[1].Milestone = p.EndTime + 1
			},
			want: ErrMilestoneOutOfRange,
		},
		{
			name: "milestone before start",
			mutate: func(p *contracts.CampaignFactoryCreateCampaignParams) {
				p.Segments[0].Milestone = p.StartTime - 1
			},
			want: ErrMilestoneOutOfRange,
		},
		{
			name:   "inverted window",
			mutate: func(p *contracts.CampaignFactoryCreateCampaignParams) { p.EndTime = p.StartTime },
			want:   ErrCampaignWindow,
		},
		{
			name:   "zero target",
			mutate: func(p *contracts.CampaignFactoryCreateCampaignParams) { p.TargetAmount = new(big.Int) },
			want:   ErrTargetAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base()
			tt.mutate(&p)
			require.ErrorIs(t, ValidateParams(p), tt.want)
		})
	}
}

func TestValidateParams_MilestonesOnWindowEdges(t *testing.T) {
	p := base3Segments()
	require.NoError(t, ValidateParams(p))
}

func base3Segments() contracts.CampaignFactoryCreateCampaignParams {
	return contracts.CampaignFactoryCreateCampaignParams{
		StartTime:    100,
		EndTime:      200,
		TargetAmount: big.NewInt(1),
		Segments: []contracts.CampaignFactorySegment{
			{PercentageBps: big.NewInt(0), Milestone: 100},
			{PercentageBps: big.NewInt(2500), Milestone: 150},
			{PercentageBps: big.NewInt(7500), Milestone: 200},
		},
	}
}
