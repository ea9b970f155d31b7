package knowledge

import "strings"

// Entity ids are deterministic slugs: type prefix + lowercased name with
// spaces collapsed to underscores. Sector names additionally collapse "/"
// (AI/ML) and stage names collapse "-" (Pre-Seed) so variants normalize to
// the same id.

func regionID(name string) string {
	return "region_" + slug(name)
}

func stateID(name string) string {
	return "state_" + slug(name)
}

func cityID(name string) string {
	return "city_" + slug(name)
}

func sectorID(name string) string {
	return "sector_" + strings.ReplaceAll(slug(name), "/", "_")
}

func stageID(name string) string {
	return "stage_" + strings.ReplaceAll(slug(name), "-", "_")
}

func investorID(seedID string) string {
	return "investor_" + seedID
}

func schemeID(seedID string) string {
	return "scheme_" + seedID
}

func opportunityID(seedID string) string {
	return "opportunity_" + seedID
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
