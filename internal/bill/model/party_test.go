package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartyCategory(t *testing.T) {
	t.Run("democrat labels", func(t *testing.T) {
		assert.Equal(t, PartyDemocrat, PartyCategory("Democrat"))
		assert.Equal(t, PartyDemocrat, PartyCategory("Democratic"))
		assert.Equal(t, PartyDemocrat, PartyCategory("democrat (D)"))
	})

	t.Run("republican labels", func(t *testing.T) {
		assert.Equal(t, PartyRepublican, PartyCategory("Republican"))
		assert.Equal(t, PartyRepublican, PartyCategory("Republican (R)"))
	})

	t.Run("everything else is independent", func(t *testing.T) {
		assert.Equal(t, PartyIndependent, PartyCategory(""))
		assert.Equal(t, PartyIndependent, PartyCategory("Libertarian"))
		assert.Equal(t, PartyIndependent, PartyCategory("Independent"))
		assert.Equal(t, PartyIndependent, PartyCategory("???"))
	})
}

func TestChamberOf(t *testing.T) {
	assert.Equal(t, ChamberSenate, ChamberOf("SB0123"))
	assert.Equal(t, ChamberSenate, ChamberOf("sb0001"))
	assert.Equal(t, ChamberSenate, ChamberOf("SJR0004"))
	assert.Equal(t, ChamberHouse, ChamberOf("HB1001"))
	assert.Equal(t, ChamberHouse, ChamberOf("HJR0002"))
	assert.Equal(t, ChamberUnknown, ChamberOf(""))
	assert.Equal(t, ChamberUnknown, ChamberOf("XB999"))
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "Jane Smith", CleanName("Senator Jane Smith"))
	assert.Equal(t, "Jane Smith", CleanName("Sen. Jane Smith"))
	assert.Equal(t, "Bob Jones", CleanName("Representative Bob Jones"))
	assert.Equal(t, "Bob Jones", CleanName("Rep. Bob Jones"))
	assert.Equal(t, "Bob Jones", CleanName("  Bob Jones  "))
	assert.Equal(t, "", CleanName(""))
}

func TestBillKey(t *testing.T) {
	a := Bill{BillName: "SB0001", Type: "authored"}
	b := Bill{BillName: "SB0001", Type: "coauthored"}
	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, a.Key(), Bill{BillName: "SB0001", Type: "authored"}.Key())
}

func TestDetailsDigest(t *testing.T) {
	var d *Details
	assert.Equal(t, "", d.Digest())
	assert.Equal(t, "", (&Details{}).Digest())
	assert.Equal(t, "text", (&Details{LatestVersion: &LatestVersion{Digest: "text"}}).Digest())
}
