package chaincfg

// mainNetSeeds and testNetSeeds are the bootstrap peer addresses returned
// by Params.Seeds for the main and test networks. The regression test
// network intentionally has none — regtest peers are always configured
// explicitly.
var (
	mainNetSeeds = []string{
		"seed1.creativechain.org",
		"seed2.creativechain.org",
		"seed.creativecoin.info",
	}

	testNetSeeds = []string{
		"testnet-seed.creativechain.org",
	}
)
