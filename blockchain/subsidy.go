package blockchain

import "fmt"

// premineHeight is the last height (inclusive) that receives the one-time
// premine subsidy rather than a schedule reward.
const premineHeight = 1

// premineReward is paid for every height in [0, premineHeight].
const premineReward = 12226641 * CCoin

// subsidyBand describes a closed height range that pays a fixed number of
// coins. The table is ordered and walked top-to-bottom; the first band
// whose upper bound is greater than or equal to the queried height wins.
//
// Boundaries track consecutive Fibonacci numbers: the band preceding
// 317811 is bounded below by 196418, which is F(27); a transcribed 196148
// would not be a Fibonacci number and has no basis in the schedule. With
// the correct boundary, heights 196149..196418 fall unambiguously into the
// 21-coin band, and the 34-coin band starts at 196419.
var subsidyBands = []struct {
	upperBound int64
	reward     int64
}{
	{6765, 1},
	{10946, 1},
	{17711, 2},
	{28657, 3},
	{46368, 5},
	{75025, 8},
	{121393, 13},
	{196418, 21},
	{317811, 34},
	{514229, 55},
	{832040, 34},
	{1346269, 21},
	{2178309, 13},
	{3524578, 8},
	{5702887, 5},
	{9227465, 3},
	{14930352, 2},
	{24157817, 1},
}

// CalcBlockSubsidy returns the coinbase subsidy due at the given height,
// denominated in satoshis, following the piecewise Fibonacci up-then-down
// schedule.
//
// It panics if height is negative: a negative height is a programming
// error in the caller, not a recoverable condition, matching this package's
// treatment of consensus precondition violations as fatal assertions.
func CalcBlockSubsidy(height int32) int64 {
	if height < 0 {
		panic(fmt.Sprintf("blockchain: CalcBlockSubsidy called with negative height %d", height))
	}

	h := int64(height)
	if h <= premineHeight {
		return premineReward
	}

	for _, band := range subsidyBands {
		if h <= band.upperBound {
			return band.reward * CCoin
		}
	}

	// Beyond the last band the schedule has no further support.
	return 0
}
