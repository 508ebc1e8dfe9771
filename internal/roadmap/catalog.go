package roadmap

import (
	"fmt"
	"slices"
)

// seedResources is the static learning-resource catalog. Order matters:
// selection tie-breaks and final per-phase emission both follow catalog
// order, so resources are listed in teaching order within each phase.
var seedResources = []Resource{
	// Phase 1: Foundations.
	{
		ID: "prog-basics-course", Title: "Programming Basics with JavaScript",
		Description: "Variables, operators and conditionals from zero.",
		Type:        TypeCourse, Phase: PhaseFoundations,
		SkillKeys:  []string{"prog_variables", "prog_operators", "prog_conditionals"},
		Difficulty: 1, EstimatedHours: 12,
	},
	{
		ID: "loops-functions-reading", Title: "Loops and Functions Deep Dive",
		Description: "Iteration patterns and function design in small programs.",
		Type:        TypeReading, Phase: PhaseFoundations,
		SkillKeys:  []string{"prog_loops", "prog_functions"},
		Difficulty: 1, EstimatedHours: 4,
		Prerequisites: []string{"prog-basics-course"},
	},
	{
		ID: "array-drills", Title: "Array Drills",
		Description: "Short exercises on collections and the core array methods.",
		Type:        TypeExercise, Phase: PhaseFoundations,
		SkillKeys:  []string{"prog_arrays", "js_array_methods"},
		Difficulty: 2, EstimatedHours: 6,
		Prerequisites: []string{"prog-basics-course"},
	},
	{
		ID: "js-syntax-reading", Title: "Modern JavaScript Syntax",
		Description: "let/const, template strings, destructuring, arrow functions.",
		Type:        TypeReading, Phase: PhaseFoundations,
		SkillKeys:  []string{"js_syntax"},
		Difficulty: 1, EstimatedHours: 4,
		Prerequisites: []string{"prog-basics-course"},
	},
	{
		ID: "html-semantics", Title: "Semantic HTML",
		Description: "Structure documents with the right elements, not divs.",
		Type:        TypeReading, Phase: PhaseFoundations,
		SkillKeys:  []string{"web_html", "web_accessibility"},
		Difficulty: 1, EstimatedHours: 3,
	},
	{
		ID: "css-fundamentals", Title: "CSS from the Ground Up",
		Description: "Selectors, the cascade, the box model.",
		Type:        TypeCourse, Phase: PhaseFoundations,
		SkillKeys:  []string{"web_css"},
		Difficulty: 1, EstimatedHours: 8,
		Prerequisites: []string{"html-semantics"},
	},
	{
		ID: "flexbox-grid-workouts", Title: "Flexbox and Grid Workouts",
		Description: "Rebuild common layouts until they stop being scary.",
		Type:        TypeExercise, Phase: PhaseFoundations,
		SkillKeys:  []string{"web_layout", "web_responsive"},
		Difficulty: 2, EstimatedHours: 5,
		Prerequisites: []string{"css-fundamentals"},
	},
	{
		ID: "git-essentials", Title: "Git Essentials",
		Description: "Commits, branches and recovering from mistakes.",
		Type:        TypeReading, Phase: PhaseFoundations,
		SkillKeys:  []string{"dev_git"},
		Difficulty: 1, EstimatedHours: 3,
	},
	{
		ID: "terminal-survival", Title: "Command Line Survival",
		Description: "Enough shell to stop fearing the terminal.",
		Type:        TypeReading, Phase: PhaseFoundations,
		SkillKeys:  []string{"dev_terminal"},
		Difficulty: 1, EstimatedHours: 2,
	},
	{
		ID: "reading-docs", Title: "Reading Documentation Well",
		Description: "How to find answers in MDN and package docs.",
		Type:        TypeReading, Phase: PhaseFoundations,
		SkillKeys:  []string{"dev_reading_docs"},
		Difficulty: 1, EstimatedHours: 2,
	},
	{
		ID: "debugging-practice", Title: "Debugging Practice",
		Description: "Read broken programs and narrow down the fault.",
		Type:        TypeExercise, Phase: PhaseFoundations,
		SkillKeys:  []string{"prog_debugging", "dev_terminal"},
		Difficulty: 2, EstimatedHours: 4,
	},
	{
		ID: "profile-page-project", Title: "Personal Profile Page",
		Description: "A small static page, designed and shipped by you.",
		Type:        TypeProject, Phase: PhaseFoundations,
		SkillKeys:  []string{"web_html", "web_css", "design_hierarchy"},
		Difficulty: 2, EstimatedHours: 8,
		Prerequisites: []string{"css-fundamentals"},
	},
	{
		ID: "static-site-milestone", Title: "Static Site Shipped",
		Description: "A site of yours is live and under version control.",
		Type:        TypeMilestone, Phase: PhaseFoundations,
		SkillKeys:  []string{"web_html", "dev_git"},
		Difficulty: 2, EstimatedHours: 1,
		Prerequisites: []string{"profile-page-project", "git-essentials"},
	},

	// Phase 2: Intermediate.
	{
		ID: "dom-events-course", Title: "DOM and Events",
		Description: "Select, mutate and listen; make pages react.",
		Type:        TypeCourse, Phase: PhaseIntermediate,
		SkillKeys:  []string{"js_dom", "js_events"},
		Difficulty: 2, EstimatedHours: 8,
		Prerequisites: []string{"js-syntax-reading"},
	},
	{
		ID: "objects-prototypes", Title: "Objects and Prototypes",
		Description: "How JavaScript objects actually work.",
		Type:        TypeReading, Phase: PhaseIntermediate,
		SkillKeys:  []string{"js_objects"},
		Difficulty: 3, EstimatedHours: 4,
		Prerequisites: []string{"js-syntax-reading"},
	},
	{
		ID: "async-course", Title: "Async JavaScript",
		Description: "Callbacks, promises, async/await and the event loop.",
		Type:        TypeCourse, Phase: PhaseIntermediate,
		SkillKeys:  []string{"js_async"},
		Difficulty: 3, EstimatedHours: 8,
		Prerequisites: []string{"objects-prototypes"},
	},
	{
		ID: "modules-tooling", Title: "Modules and Tooling",
		Description: "Imports, exports and what bundlers do for you.",
		Type:        TypeReading, Phase: PhaseIntermediate,
		SkillKeys:  []string{"js_modules"},
		Difficulty: 2, EstimatedHours: 3,
	},
	{
		ID: "http-reading", Title: "HTTP from the Browser's Side",
		Description: "Requests, responses, status codes and caching headers.",
		Type:        TypeReading, Phase: PhaseIntermediate,
		SkillKeys:  []string{"web_http"},
		Difficulty: 2, EstimatedHours: 3,
	},
	{
		ID: "typography-studies", Title: "Typography and Spacing Studies",
		Description: "Recreate well-set pages and learn why they read well.",
		Type:        TypeDesign, Phase: PhaseIntermediate,
		SkillKeys:  []string{"design_typography", "design_color"},
		Difficulty: 2, EstimatedHours: 4,
	},
	{
		ID: "testing-habits", Title: "Testing Habits",
		Description: "Write your first automated tests and keep them green.",
		Type:        TypeExercise, Phase: PhaseIntermediate,
		SkillKeys:  []string{"dev_testing"},
		Difficulty: 2, EstimatedHours: 5,
	},
	{
		ID: "interactive-widget", Title: "Interactive Widget",
		Description: "A self-contained UI component with real interaction.",
		Type:        TypeProject, Phase: PhaseIntermediate,
		SkillKeys:  []string{"js_dom", "js_events", "design_ux"},
		Difficulty: 3, EstimatedHours: 10,
		Prerequisites: []string{"dom-events-course"},
	},
	{
		ID: "node-basics", Title: "Node.js Basics",
		Description: "The runtime outside the browser; scripts and servers.",
		Type:        TypeCourse, Phase: PhaseIntermediate,
		SkillKeys:  []string{"be_node"},
		Difficulty: 3, EstimatedHours: 8,
		Prerequisites: []string{"async-course"},
	},
	{
		ID: "rest-design", Title: "Designing REST APIs",
		Description: "Resources, verbs, status codes and error shapes.",
		Type:        TypeReading, Phase: PhaseIntermediate,
		SkillKeys:  []string{"be_rest", "be_errors"},
		Difficulty: 3, EstimatedHours: 4,
		Prerequisites: []string{"http-reading"},
	},

	// Phase 3: Advanced.
	{
		ID: "sql-data-modeling", Title: "SQL and Data Modeling",
		Description: "Tables, joins and designing a schema that survives change.",
		Type:        TypeCourse, Phase: PhaseAdvanced,
		SkillKeys:  []string{"be_databases"},
		Difficulty: 3, EstimatedHours: 10,
	},
	{
		ID: "auth-reading", Title: "Sessions, Tokens and Auth",
		Description: "How logins work and how input validation keeps you safe.",
		Type:        TypeReading, Phase: PhaseAdvanced,
		SkillKeys:  []string{"be_auth", "be_validation"},
		Difficulty: 4, EstimatedHours: 4,
		Prerequisites: []string{"rest-design"},
	},
	{
		ID: "architecture-reading", Title: "Structuring Applications",
		Description: "Break a product into parts that can be built and tested.",
		Type:        TypeReading, Phase: PhaseAdvanced,
		SkillKeys:  []string{"sys_architecture", "sys_decomposition"},
		Difficulty: 4, EstimatedHours: 4,
	},
	{
		ID: "dataflow-tracing", Title: "Tracing Data Flow",
		Description: "Follow a value from click to database and back.",
		Type:        TypeExercise, Phase: PhaseAdvanced,
		SkillKeys:  []string{"sys_dataflow", "prog_debugging"},
		Difficulty: 3, EstimatedHours: 5,
	},
	{
		ID: "design-review-practice", Title: "Design Review Practice",
		Description: "Critique real interfaces and defend the trade-offs.",
		Type:        TypeDesign, Phase: PhaseAdvanced,
		SkillKeys:  []string{"design_ux", "sys_tradeoffs"},
		Difficulty: 3, EstimatedHours: 4,
	},
	{
		ID: "fullstack-crud-app", Title: "Full-Stack CRUD App",
		Description: "A browser client talking to your own API and database.",
		Type:        TypeProject, Phase: PhaseAdvanced,
		SkillKeys:  []string{"be_node", "be_rest", "be_databases", "js_async"},
		Difficulty: 4, EstimatedHours: 20,
		Prerequisites: []string{"node-basics", "sql-data-modeling"},
	},
	{
		ID: "capstone-product", Title: "Capstone: Deployable Product",
		Description: "Something real, with auth, tests and a design you can defend.",
		Type:        TypeProject, Phase: PhaseAdvanced,
		SkillKeys:  []string{"sys_architecture", "be_auth", "design_hierarchy", "dev_testing"},
		Difficulty: 5, EstimatedHours: 30,
		Prerequisites: []string{"fullstack-crud-app"},
	},
	{
		ID: "portfolio-milestone", Title: "Portfolio Ready",
		Description: "Two shipped projects, documented, pinned and presentable.",
		Type:        TypeMilestone, Phase: PhaseAdvanced,
		SkillKeys:  []string{"dev_git", "sys_architecture"},
		Difficulty: 4, EstimatedHours: 2,
		Prerequisites: []string{"capstone-product"},
	},
}

// catalog holds the validated resource catalog with precomputed indices.
type catalog struct {
	resources []Resource
	byID      map[string]*Resource
	order     map[string]int // catalog position, for deterministic tie-breaks
	byPhase   map[Phase][]Resource
}

var c *catalog

func init() {
	if err := validateResources(seedResources); err != nil {
		panic(err)
	}
	c = buildCatalog(seedResources)
}

func buildCatalog(resources []Resource) *catalog {
	ct := &catalog{
		resources: resources,
		byID:      make(map[string]*Resource, len(resources)),
		order:     make(map[string]int, len(resources)),
		byPhase:   make(map[Phase][]Resource),
	}
	for i := range ct.resources {
		r := &ct.resources[i]
		ct.byID[r.ID] = r
		ct.order[r.ID] = i
		ct.byPhase[r.Phase] = append(ct.byPhase[r.Phase], *r)
	}
	return ct
}

// Get returns a catalog resource by ID, or an error if not found.
func Get(id string) (Resource, error) {
	r, ok := c.byID[id]
	if !ok {
		return Resource{}, fmt.Errorf("resource not found: %q", id)
	}
	return *r, nil
}

// All returns every resource in catalog order.
func All() []Resource {
	return slices.Clone(c.resources)
}

// ByPhase returns the resources of one phase in catalog order.
func ByPhase(p Phase) []Resource {
	return slices.Clone(c.byPhase[p])
}

// CatalogOrder returns the catalog position of a resource ID. Unknown
// IDs sort last.
func CatalogOrder(id string) int {
	if pos, ok := c.order[id]; ok {
		return pos
	}
	return len(c.resources)
}

// Count returns the catalog size.
func Count() int {
	return len(c.resources)
}
