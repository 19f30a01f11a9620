package chaincfg

import (
	"errors"
	"testing"

	"github.com/creativechain/ccoin/wire"
)

func TestParamsByNameStandardNetworks(t *testing.T) {
	tests := []struct {
		name string
		want *Params
	}{
		{"main", &MainNetParams},
		{"MAIN", &MainNetParams},
		{"testnet", &TestNetParams},
		{"regtest", &RegressionNetParams},
	}

	for _, tc := range tests {
		got, err := ParamsByName(tc.name)
		if err != nil {
			t.Fatalf("ParamsByName(%q) returned error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("ParamsByName(%q) = %p, want %p", tc.name, got, tc.want)
		}
	}
}

func TestParamsByNameUnknown(t *testing.T) {
	_, err := ParamsByName("doesnotexist")
	if !errors.Is(err, ErrUnknownNetwork) {
		t.Fatalf("got error %v, want ErrUnknownNetwork", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	err := Register(&MainNetParams)
	if !errors.Is(err, ErrDuplicatedNet) {
		t.Fatalf("got error %v, want ErrDuplicatedNet", err)
	}
}

func TestRegisterNewNetwork(t *testing.T) {
	custom := &Params{
		Name: "custom-test-net",
		Net:  wire.BitcoinNet(0x11223344),
	}
	if err := Register(custom); err != nil {
		t.Fatalf("Register returned unexpected error: %v", err)
	}

	got, err := ParamsByName("custom-test-net")
	if err != nil {
		t.Fatalf("ParamsByName did not find newly registered network: %v", err)
	}
	if got != custom {
		t.Errorf("ParamsByName returned %p, want %p", got, custom)
	}
}

func TestSeedsReturnsCopy(t *testing.T) {
	seeds := MainNetParams.Seeds()
	if len(seeds) == 0 {
		t.Fatal("MainNetParams.Seeds() returned no seeds")
	}

	seeds[0] = "corrupted"
	if MainNetParams.DNSSeeds[0] == "corrupted" {
		t.Fatal("Seeds() leaked a mutable reference to the internal seed slice")
	}
}

func TestRegressionNetHasNoSeeds(t *testing.T) {
	if seeds := RegressionNetParams.Seeds(); len(seeds) != 0 {
		t.Errorf("RegressionNetParams.Seeds() = %v, want empty", seeds)
	}
}
