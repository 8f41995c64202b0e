package graph

// Query is a named, canned Cypher query for quick exploration.
type Query struct {
	Name   string
	Label  string
	Cypher string
}

// Queries is the catalog of canned explorations offered by the graph
// command.
var Queries = []Query{
	{
		Name:   "all",
		Label:  "Whole graph (limited)",
		Cypher: "MATCH (n)-[r]->(m) RETURN n, r, m LIMIT 150",
	},
	{
		Name:   "skills",
		Label:  "Consultants → Skills",
		Cypher: "MATCH (c:Consultant)-[r:HAS_SKILL]->(s:Skill) RETURN c, r, s LIMIT 150",
	},
	{
		Name:   "projects",
		Label:  "Consultants → Projects",
		Cypher: "MATCH (c:Consultant)-[r:ASSIGNED_TO]->(p:Project) RETURN c, r, p LIMIT 150",
	},
	{
		Name:   "companies",
		Label:  "Projects → Companies",
		Cypher: "MATCH (p:Project)-[r:OWNED_BY]->(co:Company) RETURN p, r, co",
	},
	{
		Name:   "requirements",
		Label:  "Projects → Required skills",
		Cypher: "MATCH (p:Project)-[r:REQUIRES_SKILL]->(s:Skill) RETURN p, r, s",
	},
	{
		Name:  "available",
		Label: "Available consultants",
		Cypher: "MATCH (c:Consultant) WHERE c.availability = true " +
			"OPTIONAL MATCH (c)-[r:HAS_SKILL]->(s:Skill) RETURN c, r, s LIMIT 100",
	},
}

// QueryByName looks up a canned query by its short name.
func QueryByName(name string) (Query, bool) {
	for _, q := range Queries {
		if q.Name == name {
			return q, true
		}
	}
	return Query{}, false
}
