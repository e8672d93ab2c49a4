package dedupe

import (
	"reflect"
	"testing"
)

func TestGroups_Empty(t *testing.T) {
	if got := Groups(nil, 4); got != nil {
		t.Errorf("expected nil for no hashes, got %v", got)
	}
	if got := Groups([]uint64{42}, 4); got != nil {
		t.Errorf("expected nil for single hash, got %v", got)
	}
}

func TestGroups_Basic(t *testing.T) {
	hashes := []uint64{
		0b0000,             // 0
		0b0001,             // 1: distance 1 from 0
		0xFFFFFFFFFFFFFFFF, // 2: far from everything
		0b0011,             // 3: distance 1 from 1
	}

	got := Groups(hashes, 1)
	want := [][]int{{0, 1, 3}} // transitive: 0-1 and 1-3
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGroups_IdenticalHashes(t *testing.T) {
	hashes := []uint64{7, 7, 7, 0xF0F0}

	got := Groups(hashes, 0)
	want := [][]int{{0, 1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGroups_MultipleGroups(t *testing.T) {
	hashes := []uint64{
		0x00,               // 0
		0x01,               // 1: near 0
		0xF0,               // 2
		0xF1,               // 3: near 2
		0xAAAAAAAAAAAAAAAA, // 4: alone
	}

	got := Groups(hashes, 1)
	want := [][]int{{0, 1}, {2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGroups_ThresholdZeroSeparates(t *testing.T) {
	hashes := []uint64{0x00, 0x01, 0x02}

	if got := Groups(hashes, 0); got != nil {
		t.Errorf("expected no groups at threshold 0, got %v", got)
	}
}
