package catalog

import "github.com/goliatone/go-ctxgen/pkg/model"

// Fallback literals used by sections that are always emitted.
const (
	notSpecified  = "Not specified"
	notProvided   = "Not provided"
	noDescription = "No description provided"
)

var developmentChecklist = []string{
	"Set up development environment",
	"Initialize version control (Git)",
	"Create project structure",
	"Implement core features",
	"Add user authentication",
	"Set up database/data storage",
	"Implement error handling",
	"Add logging and monitoring",
	"Write comprehensive tests",
	"Create deployment pipeline",
	"Document APIs and usage",
	"Perform security review",
	"Optimize performance",
	"Plan maintenance strategy",
}

var qualityChecks = []string{
	"Unit tests for business logic",
	"Integration tests for components",
	"End-to-end user workflow tests",
	"Performance and load testing",
	"Security vulnerability assessment",
	"Accessibility compliance check",
	"Cross-platform compatibility",
	"User acceptance testing",
}

var mcpProtocolRequirements = "- Follow MCP specification from https://modelcontextprotocol.io/\n" +
	"- Implement proper JSON-RPC 2.0 communication\n" +
	"- Include proper error handling and validation\n" +
	"- Support standard MCP lifecycle methods"

func text(height int, placeholder string) model.MultiLine {
	return model.MultiLine{Height: height, Placeholder: placeholder}
}

func choice(options ...string) model.Choice {
	return model.Choice{Options: options}
}

func builtinTemplates() []model.Template {
	templates := []model.Template{
		appDevelopment(),
		mcpDevelopment(),
		bugReport(),
		featureRequest(),
	}
	return append(templates, applicationTemplates()...)
}

func withChecklists(tpl model.Template) model.Template {
	tpl.Checklist = developmentChecklist
	tpl.QualityChecks = qualityChecks
	return tpl
}

func appDevelopment() model.Template {
	return withChecklists(model.Template{
		Kind:  model.KindAppDevelopment,
		Title: "App Development",
		Fields: []model.Field{
			model.NewField("Project Name", model.SingleLine{}, true,
				"Enter a clear, descriptive name for your project (e.g., 'Customer Management System', 'Weather Dashboard')"),
			model.NewField("Project Type", choice("Web App", "Desktop App", "CLI Tool", "API Service"), true,
				"Select the type of application you want to build:\n• Web App: Browser-based application\n• Desktop App: Standalone GUI application\n• CLI Tool: Command-line interface\n• API Service: Backend service with REST/GraphQL API"),
			model.NewField("Programming Language", choice("Python", "JavaScript", "TypeScript", "Java", "C#", "Go"), true,
				"Choose your primary programming language. Consider:\n• Python: Great for rapid development, data processing\n• JavaScript/TypeScript: Web development, Node.js\n• Java/C#: Enterprise applications\n• Go: High-performance services"),
			model.NewField("Framework", model.SingleLine{}, false,
				"Specify the framework or library (e.g., Flask, React, Django, Express, .NET Core). Leave blank if unsure."),
			model.NewField("Requirements", text(8, "List specific requirements, one per line"), true,
				"List specific, measurable requirements:\n• User can login with email/password\n• System displays real-time data updates\n• Export data to CSV format\n• Support 1000+ concurrent users\n\nBe specific about what the app should DO, not how it should work."),
			model.NewField("Existing Code", text(6, "Paste existing code or file structure"), false,
				"Include any existing code, file structure, or database schemas that should be considered:\n• Current file organization\n• Existing functions/classes\n• Database tables\n• API endpoints\n\nThis helps AI understand what already exists."),
			model.NewField("Dependencies", text(4, "List dependencies and versions"), false,
				"List required libraries, packages, or external services:\n• Python: flask==2.0.1, sqlalchemy>=1.4\n• Node.js: express@4.18.0, mongoose@6.0\n• External APIs: Stripe, SendGrid, AWS S3\n• Databases: PostgreSQL 13+, Redis"),
			model.NewField("Target Platform", choice("Windows", "Linux", "macOS", "Cross-platform"), true,
				"Select where your application will run:\n• Windows: Windows-specific features\n• Linux: Server deployments, containers\n• macOS: Mac-specific applications\n• Cross-platform: Works on multiple operating systems"),
			model.NewField("UI Requirements", text(4, "Describe UI/UX requirements"), false,
				"Describe the user interface and experience:\n• Layout: Dashboard with sidebar navigation\n• Colors: Corporate blue theme\n• Responsive: Mobile-friendly design\n• Accessibility: Screen reader support\n• Components: Data tables, charts, forms"),
			model.NewField("Testing Requirements", text(3, "Testing strategy and requirements"), false,
				"Specify testing approach:\n• Unit tests for core functions\n• Integration tests for API endpoints\n• End-to-end tests for user workflows\n• Performance tests for 1000+ users\n• Security testing for authentication"),
		},
		Sections: []model.Section{
			{Field: "Project Name", Header: "PROJECT:", Tag: "project", Inline: true, Fallback: "Unnamed Project"},
			{
				Field: "Project Type", Header: "TYPE:", Tag: "type", Inline: true, Fallback: notSpecified,
				Parts: []model.Part{{Field: "Programming Language", Separator: " using ", Fallback: notSpecified}},
			},
			{Field: "Framework", Header: "FRAMEWORK:", Inline: true},
			{Field: "Target Platform", Header: "TARGET PLATFORM:", Inline: true, Fallback: notSpecified},
			{Field: "Requirements", Header: "REQUIREMENTS:", Items: "item"},
			{Field: "Existing Code", Header: "EXISTING CODE:"},
			{Field: "Dependencies", Header: "DEPENDENCIES:", Items: "item"},
			{Field: "UI Requirements", Header: "UI/UX REQUIREMENTS:"},
			{Field: "Testing Requirements", Header: "TESTING REQUIREMENTS:"},
		},
	})
}

func mcpDevelopment() model.Template {
	return withChecklists(model.Template{
		Kind:  model.KindMCPDevelopment,
		Title: "MCP Development",
		Fields: []model.Field{
			model.NewField("MCP Server Name", model.SingleLine{}, true,
				"Choose a descriptive name for your MCP server (e.g., 'file-manager', 'database-connector', 'weather-api')"),
			model.NewField("Server Description", text(3, "What does this MCP server do?"), true,
				"Clearly describe what your MCP server provides:\n• 'Manages local file operations and directory browsing'\n• 'Connects to PostgreSQL databases for data queries'\n• 'Provides weather data from OpenWeatherMap API'\n\nBe specific about the main purpose and capabilities."),
			model.NewField("Tools to Implement", text(6, "List tools with descriptions, one per line"), true,
				"List each tool your MCP will provide:\n• read_file: Read contents of a text file\n• write_file: Write content to a file\n• list_directory: List files in a directory\n• execute_query: Run SQL queries on database\n\nFormat: tool_name: description of what it does"),
			model.NewField("Resources to Provide", text(4, "List resources (files, data sources, etc.)"), false,
				"Resources are data sources your MCP exposes:\n• file://path/to/config.json\n• database://localhost:5432/mydb\n• api://weather.example.com/current\n\nResources provide read-only access to data."),
			model.NewField("Prompts to Include", text(4, "List prompt templates"), false,
				"Prompt templates help users interact with your MCP:\n• 'Analyze this file for security issues'\n• 'Generate SQL query for customer data'\n• 'Create backup script for database'\n\nThese guide users on how to use your tools effectively."),
			model.NewField("Configuration Options", text(4, "Environment variables, settings, etc."), false,
				"Configuration your MCP server needs:\n• DATABASE_URL: Connection string\n• API_KEY: Authentication token\n• MAX_FILE_SIZE: File size limit in MB\n• DEBUG_MODE: Enable debug logging\n\nInclude environment variables and settings."),
			model.NewField("Error Handling", text(3, "Specific error scenarios to handle"), false,
				"Important error cases to handle gracefully:\n• File not found or permission denied\n• Database connection failures\n• API rate limits exceeded\n• Invalid input parameters\n• Network timeouts"),
			model.NewField("Integration Requirements", text(3, "How should this integrate with other systems?"), false,
				"How your MCP connects to other systems:\n• Authentication with OAuth2\n• Webhook notifications\n• Integration with existing APIs\n• Data synchronization requirements\n• Security and permission models"),
		},
		Sections: []model.Section{
			{Field: "MCP Server Name", Header: "MCP SERVER:", Tag: "server", Inline: true, Fallback: "Unnamed Server"},
			{Field: "Server Description", Header: "DESCRIPTION:", Tag: "description", Inline: true, Fallback: noDescription},
			{Title: "MCP Protocol Requirements", Header: "MCP PROTOCOL REQUIREMENTS:", Tag: "protocol_requirements", Static: mcpProtocolRequirements},
			{Field: "Tools to Implement", Header: "TOOLS TO IMPLEMENT:", Tag: "tools", Items: "tool"},
			{Field: "Resources to Provide", Header: "RESOURCES:", Tag: "resources", Items: "resource"},
			{Field: "Prompts to Include", Header: "PROMPTS:", Tag: "prompts", Items: "prompt"},
			{Field: "Configuration Options", Header: "CONFIGURATION:", Tag: "configuration"},
			{Field: "Error Handling", Header: "ERROR HANDLING:"},
			{Field: "Integration Requirements", Header: "INTEGRATION:", Tag: "integration"},
		},
	})
}

func bugReport() model.Template {
	return withChecklists(model.Template{
		Kind:  model.KindBugReport,
		Title: "Bug Report",
		Fields: []model.Field{
			model.NewField("Bug Title", model.SingleLine{}, true,
				"Write a clear, specific title:\n• Good: 'Login fails with 500 error when password contains special characters'\n• Bad: 'Login broken'\n\nInclude what's broken and key symptoms."),
			model.NewField("Current Behavior", text(4, "What is happening now?"), true,
				"Describe exactly what happens when the bug occurs:\n• User clicks login button\n• Page shows 500 Internal Server Error\n• No error message displayed to user\n• Browser console shows 'TypeError: Cannot read property...'\n\nBe specific about what you observe."),
			model.NewField("Expected Behavior", text(4, "What should happen instead?"), true,
				"Describe what should happen in the normal case:\n• User should be logged in successfully\n• Dashboard page should load\n• Welcome message should appear\n• Navigation menu should be visible\n\nExplain the correct behavior clearly."),
			model.NewField("Steps to Reproduce", text(6, "Step-by-step reproduction"), true,
				"Provide exact steps to reproduce the bug:\n1. Open browser and go to login page\n2. Enter email: test@example.com\n3. Enter password: P@ssw0rd!\n4. Click 'Login' button\n5. Observe error message\n\nNumber each step clearly."),
			model.NewField("Error Messages", text(4, "Exact error messages or logs"), false,
				"Include exact error messages:\n• Browser console errors\n• Server log entries\n• Error dialog text\n• HTTP status codes\n• Stack traces\n\nCopy and paste the exact text."),
			model.NewField("Environment", text(3, "OS, Python version, dependencies"), true,
				"Specify your environment:\n• Operating System: Windows 10, macOS 12.1, Ubuntu 20.04\n• Browser: Chrome 96.0, Firefox 95.0\n• Python version: 3.9.7\n• Framework versions: Flask 2.0.1\n• Database: PostgreSQL 13.4"),
			model.NewField("Code Context", text(6, "Relevant code snippets"), false,
				"Include relevant code that might be causing the issue:\n• Function where error occurs\n• Configuration files\n• Database queries\n• API calls\n• Recent changes\n\nHelp identify the root cause."),
		},
		Sections: []model.Section{
			{Field: "Bug Title", Header: "BUG REPORT:", Tag: "bug_title", Inline: true, Fallback: "Untitled Bug"},
			{Field: "Current Behavior", Header: "CURRENT BEHAVIOR:", Fallback: notSpecified},
			{Field: "Expected Behavior", Header: "EXPECTED BEHAVIOR:", Fallback: notSpecified},
			{Field: "Steps to Reproduce", Header: "REPRODUCTION STEPS:", Tag: "reproduction_steps", Fallback: notProvided},
			{Field: "Error Messages", Header: "ERROR MESSAGES:"},
			{Field: "Environment", Header: "ENVIRONMENT:", Fallback: notSpecified},
			{Field: "Code Context", Header: "RELEVANT CODE:", Tag: "relevant_code"},
		},
	})
}

func featureRequest() model.Template {
	return withChecklists(model.Template{
		Kind:  model.KindFeatureRequest,
		Title: "Feature Request",
		Fields: []model.Field{
			model.NewField("Feature Name", model.SingleLine{}, true,
				"Give your feature a clear, descriptive name:\n• 'User Profile Management'\n• 'Real-time Chat System'\n• 'CSV Data Export'\n\nMake it specific and actionable."),
			model.NewField("Feature Description", text(4, "What should this feature do?"), true,
				"Describe the feature's purpose and main functionality:\n• Allow users to update their profile information\n• Enable real-time messaging between users\n• Provide data export in multiple formats\n\nExplain the business value and user benefit."),
			model.NewField("User Stories", text(6, "As a user, I want... (one per line)"), true,
				"Write user stories in this format:\n• As a [user type], I want [goal] so that [benefit]\n• As a customer, I want to update my email address so that I receive notifications\n• As an admin, I want to export user data so that I can analyze usage patterns\n\nFocus on user goals and benefits."),
			model.NewField("Acceptance Criteria", text(6, "How to verify the feature works"), true,
				"Define specific, testable criteria:\n• Given [context], when [action], then [result]\n• User can successfully update email address\n• System validates email format before saving\n• Confirmation email is sent to new address\n• Old email receives notification of change\n\nMake criteria measurable and testable."),
			model.NewField("Technical Requirements", text(4, "Technical constraints or requirements"), false,
				"Specify technical considerations:\n• Performance: Page load under 2 seconds\n• Security: Encrypt sensitive data\n• Scalability: Support 10,000 concurrent users\n• Integration: Connect with existing user database\n• Compatibility: Work on mobile devices"),
			model.NewField("Integration Points", text(3, "How does this integrate with existing code?"), false,
				"Describe how this feature connects to existing systems:\n• Uses existing user authentication system\n• Integrates with current database schema\n• Connects to email service API\n• Updates existing user dashboard\n• Requires changes to user model"),
			model.NewField("Priority", choice("High", "Medium", "Low"), true,
				"Set feature priority:\n• High: Critical for next release, blocks other work\n• Medium: Important but can wait for next sprint\n• Low: Nice to have, can be deferred\n\nConsider business impact and user needs."),
		},
		Sections: []model.Section{
			{Field: "Feature Name", Header: "FEATURE REQUEST:", Tag: "feature_name", Inline: true, Fallback: "Unnamed Feature"},
			{Field: "Priority", Header: "PRIORITY:", Inline: true, Fallback: notSpecified},
			{Field: "Feature Description", Header: "DESCRIPTION:", Tag: "description", Fallback: noDescription},
			{Field: "User Stories", Header: "USER STORIES:", Items: "story", Fallback: notProvided},
			{Field: "Acceptance Criteria", Header: "ACCEPTANCE CRITERIA:", Items: "criterion", Fallback: notSpecified},
			{Field: "Technical Requirements", Header: "TECHNICAL REQUIREMENTS:", Items: "requirement"},
			{Field: "Integration Points", Header: "INTEGRATION POINTS:"},
		},
	})
}
