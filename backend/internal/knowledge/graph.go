package knowledge

import "strings"

// Graph is the in-memory knowledge graph. It is populated once by Build and
// read-only afterwards, so concurrent reads need no locking. The entity map
// is paired with an insertion-order slice because type scans must return
// entities in the order they were created.
type Graph struct {
	entities      map[string]*Entity
	order         []string
	relationships []Relationship
	droppedEdges  int
}

func newGraph() *Graph {
	return &Graph{entities: make(map[string]*Entity)}
}

func (g *Graph) addEntity(e *Entity) {
	if _, exists := g.entities[e.ID]; !exists {
		g.order = append(g.order, e.ID)
	}
	g.entities[e.ID] = e
}

// addRelationship appends an edge only when both endpoints exist. Edges to
// missing entities are counted and dropped, tolerating inconsistent seed data.
func (g *Graph) addRelationship(sourceID, targetID string, relType RelationType) {
	if _, ok := g.entities[sourceID]; !ok {
		g.droppedEdges++
		return
	}
	if _, ok := g.entities[targetID]; !ok {
		g.droppedEdges++
		return
	}
	g.relationships = append(g.relationships, Relationship{
		SourceID: sourceID,
		TargetID: targetID,
		Type:     relType,
	})
}

// GetEntity returns the entity with the given id, or nil if it does not exist
func (g *Graph) GetEntity(id string) *Entity {
	return g.entities[id]
}

// FindByType returns all entities of the given type in insertion order
func (g *Graph) FindByType(entityType EntityType) []*Entity {
	var results []*Entity
	for _, id := range g.order {
		if e := g.entities[id]; e.Type == entityType {
			results = append(results, e)
		}
	}
	return results
}

// FindByName returns entities whose name matches. Fuzzy matching is
// case-insensitive substring containment in either direction, so it can
// return several unrelated entities; callers must handle multi-match.
func (g *Graph) FindByName(name string, fuzzy bool) []*Entity {
	nameLower := strings.ToLower(name)
	var results []*Entity
	for _, id := range g.order {
		e := g.entities[id]
		entityLower := strings.ToLower(e.Name)
		if fuzzy {
			if strings.Contains(entityLower, nameLower) || strings.Contains(nameLower, entityLower) {
				results = append(results, e)
			}
		} else if entityLower == nameLower {
			results = append(results, e)
		}
	}
	return results
}

// Outgoing returns all relationships originating at the entity, optionally
// filtered by type ("" matches all)
func (g *Graph) Outgoing(entityID string, relType RelationType) []Relationship {
	var results []Relationship
	for _, rel := range g.relationships {
		if rel.SourceID == entityID && (relType == "" || rel.Type == relType) {
			results = append(results, rel)
		}
	}
	return results
}

// Incoming returns all relationships pointing at the entity, optionally
// filtered by type ("" matches all)
func (g *Graph) Incoming(entityID string, relType RelationType) []Relationship {
	var results []Relationship
	for _, rel := range g.relationships {
		if rel.TargetID == entityID && (relType == "" || rel.Type == relType) {
			results = append(results, rel)
		}
	}
	return results
}

// DroppedEdges returns the number of edges discarded during build because an
// endpoint did not resolve
func (g *Graph) DroppedEdges() int {
	return g.droppedEdges
}

// Stats summarizes the graph contents
type Stats struct {
	TotalEntities       int                  `json:"total_entities"`
	TotalRelationships  int                  `json:"total_relationships"`
	EntitiesByType      map[EntityType]int   `json:"entities_by_type"`
	RelationshipsByType map[RelationType]int `json:"relationships_by_type"`
}

// Stats recomputes aggregate counts on each call
func (g *Graph) Stats() Stats {
	stats := Stats{
		TotalEntities:       len(g.entities),
		TotalRelationships:  len(g.relationships),
		EntitiesByType:      make(map[EntityType]int),
		RelationshipsByType: make(map[RelationType]int),
	}
	for _, e := range g.entities {
		stats.EntitiesByType[e.Type]++
	}
	for _, rel := range g.relationships {
		stats.RelationshipsByType[rel.Type]++
	}
	return stats
}
