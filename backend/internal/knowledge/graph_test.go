package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEntity(t *testing.T) {
	g := Build(testSeed())

	e := g.GetEntity("investor_chennai_agri")
	require.NotNil(t, e)
	assert.Equal(t, "Chennai Agri Angels", e.Name)
	assert.Equal(t, EntityInvestor, e.Type)

	assert.Nil(t, g.GetEntity("investor_nope"))
}

func TestFindByType_InsertionOrder(t *testing.T) {
	g := Build(testSeed())

	investors := g.FindByType(EntityInvestor)
	require.Len(t, investors, 3)
	assert.Equal(t, "investor_chennai_agri", investors[0].ID)
	assert.Equal(t, "investor_jaipur_fin", investors[1].ID)
	assert.Equal(t, "investor_ghost", investors[2].ID)

	regions := g.FindByType(EntityRegion)
	require.Len(t, regions, len(Regions))
	for i, name := range Regions {
		assert.Equal(t, name, regions[i].Name)
	}
}

func TestFindByName_FuzzySymmetry(t *testing.T) {
	g := Build(testSeed())

	// Substring matching works in either direction
	byPartial := g.FindByName("Raj", true)
	require.Len(t, byPartial, 1)
	assert.Equal(t, "Rajasthan", byPartial[0].Name)

	byLonger := g.FindByName("schemes in Rajasthan today", true)
	require.Len(t, byLonger, 1)
	assert.Equal(t, "Rajasthan", byLonger[0].Name)
}

func TestFindByName_Exact(t *testing.T) {
	g := Build(testSeed())

	assert.Empty(t, g.FindByName("Raj", false))

	exact := g.FindByName("rajasthan", false)
	require.Len(t, exact, 1)
	assert.Equal(t, "Rajasthan", exact[0].Name)
}

func TestFindByName_ZeroMatchesIsNotAnError(t *testing.T) {
	g := Build(testSeed())
	assert.Empty(t, g.FindByName("Atlantis", true))
}

func TestOutgoingIncoming_TypeFilter(t *testing.T) {
	g := Build(testSeed())

	all := g.Outgoing("investor_chennai_agri", "")
	assert.Len(t, all, 4) // city, state, sector, stage

	operates := g.Outgoing("investor_chennai_agri", RelOperatesIn)
	assert.Len(t, operates, 2)

	located := g.Incoming("state_tamil_nadu", RelLocatedIn)
	assert.Len(t, located, 2) // Chennai, Coimbatore

	incoming := g.Incoming("sector_agritech", RelInvestsIn)
	assert.Len(t, incoming, 2) // chennai_agri, ghost
}
