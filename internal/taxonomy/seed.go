package taxonomy

// seedTags defines the static skill taxonomy: 38 skills across 7 dimensions.
// Weights reflect how strongly a skill should count toward its dimension
// score, not how important it is to learn.
var seedTags = []SkillTag{
	// Programming Fundamentals (7)
	{Key: "prog_variables", Name: "Variables & Types", Dimension: DimProgFundamentals, Weight: 1.0},
	{Key: "prog_operators", Name: "Operators & Expressions", Dimension: DimProgFundamentals, Weight: 0.8},
	{Key: "prog_conditionals", Name: "Conditionals", Dimension: DimProgFundamentals, Weight: 1.0},
	{Key: "prog_loops", Name: "Loops & Iteration", Dimension: DimProgFundamentals, Weight: 1.0},
	{Key: "prog_functions", Name: "Functions", Dimension: DimProgFundamentals, Weight: 1.0},
	{Key: "prog_arrays", Name: "Arrays & Collections", Dimension: DimProgFundamentals, Weight: 1.0},
	{Key: "prog_debugging", Name: "Reading & Debugging Code", Dimension: DimProgFundamentals, Weight: 0.9},

	// JavaScript (7)
	{Key: "js_syntax", Name: "JS Syntax Essentials", Dimension: DimJavaScript, Weight: 1.0},
	{Key: "js_objects", Name: "Objects & Prototypes", Dimension: DimJavaScript, Weight: 1.0},
	{Key: "js_array_methods", Name: "Array Methods", Dimension: DimJavaScript, Weight: 0.9},
	{Key: "js_async", Name: "Async & Promises", Dimension: DimJavaScript, Weight: 1.0},
	{Key: "js_dom", Name: "DOM Manipulation", Dimension: DimJavaScript, Weight: 0.9},
	{Key: "js_events", Name: "Events & Handlers", Dimension: DimJavaScript, Weight: 0.8},
	{Key: "js_modules", Name: "Modules & Imports", Dimension: DimJavaScript, Weight: 0.7},

	// Web Foundations (6)
	{Key: "web_html", Name: "Semantic HTML", Dimension: DimWebFoundations, Weight: 1.0},
	{Key: "web_css", Name: "CSS Fundamentals", Dimension: DimWebFoundations, Weight: 1.0},
	{Key: "web_layout", Name: "Flexbox & Grid Layout", Dimension: DimWebFoundations, Weight: 0.9},
	{Key: "web_responsive", Name: "Responsive Design", Dimension: DimWebFoundations, Weight: 0.8},
	{Key: "web_http", Name: "HTTP & Browsers", Dimension: DimWebFoundations, Weight: 0.9},
	{Key: "web_accessibility", Name: "Accessibility Basics", Dimension: DimWebFoundations, Weight: 0.6},

	// Backend (6)
	{Key: "be_node", Name: "Node.js Runtime", Dimension: DimBackend, Weight: 1.0},
	{Key: "be_rest", Name: "REST API Design", Dimension: DimBackend, Weight: 1.0},
	{Key: "be_databases", Name: "Databases & SQL", Dimension: DimBackend, Weight: 1.0},
	{Key: "be_auth", Name: "Authentication Basics", Dimension: DimBackend, Weight: 0.8},
	{Key: "be_validation", Name: "Input Validation", Dimension: DimBackend, Weight: 0.7},
	{Key: "be_errors", Name: "Error Handling", Dimension: DimBackend, Weight: 0.8},

	// System Thinking (4)
	{Key: "sys_decomposition", Name: "Problem Decomposition", Dimension: DimSystemThinking, Weight: 1.0},
	{Key: "sys_dataflow", Name: "Data Flow Reasoning", Dimension: DimSystemThinking, Weight: 0.9},
	{Key: "sys_tradeoffs", Name: "Evaluating Trade-offs", Dimension: DimSystemThinking, Weight: 0.8},
	{Key: "sys_architecture", Name: "Application Architecture", Dimension: DimSystemThinking, Weight: 0.7},

	// Design (4)
	{Key: "design_hierarchy", Name: "Visual Hierarchy", Dimension: DimDesign, Weight: 1.0},
	{Key: "design_typography", Name: "Typography & Spacing", Dimension: DimDesign, Weight: 0.8},
	{Key: "design_color", Name: "Color & Contrast", Dimension: DimDesign, Weight: 0.8},
	{Key: "design_ux", Name: "UX Critique", Dimension: DimDesign, Weight: 0.9},

	// Dev Practices (4)
	{Key: "dev_git", Name: "Git & Version Control", Dimension: DimDevPractices, Weight: 1.0},
	{Key: "dev_terminal", Name: "Terminal & Tooling", Dimension: DimDevPractices, Weight: 0.8},
	{Key: "dev_testing", Name: "Testing Habits", Dimension: DimDevPractices, Weight: 0.9},
	{Key: "dev_reading_docs", Name: "Reading Documentation", Dimension: DimDevPractices, Weight: 0.6},
}

func init() {
	if err := validateTags(seedTags); err != nil {
		panic(err)
	}
	t = buildTable(seedTags)
}
