package catalog

import (
	"strings"

	"github.com/goliatone/go-ctxgen/pkg/model"
)

// applicationEnvelope frames every application specification document.
var applicationEnvelope = model.Envelope{
	Generator: "App Development Context Builder",
	TypeLabel: "Application Type",
	Heading:   "APPLICATION SPECIFICATION",
	Root:      "application_specification",
	Request:   "Build me this application based on the specification above",
}

const technicalStack = "technical_stack"

// appSpec describes the fields and sections specific to one application type.
type appSpec struct {
	kind     model.TemplateKind
	title    string
	fields   []model.Field
	stack    []model.Section
	sections []model.Section
}

func applicationTemplates() []model.Template {
	specs := []appSpec{webApp(), desktopApp(), cliTool(), apiService(), mobileApp()}
	out := make([]model.Template, 0, len(specs))
	for _, spec := range specs {
		out = append(out, applicationTemplate(spec))
	}
	return out
}

// applicationTemplate lays out common fields, then the type specific ones, then
// the trailing common fields. Sections follow the same shape: project info,
// audience and features, the framework lines, the type specific blocks and
// finally the engineering blocks.
func applicationTemplate(spec appSpec) model.Template {
	noun := strings.ReplaceAll(string(spec.kind), "_", " ")

	fields := []model.Field{
		model.NewField("Project Name", model.SingleLine{}, true,
			"Enter a clear, descriptive name for your "+noun+":\n• Be specific: 'Task Manager Pro' not 'My App'\n• Avoid generic terms like 'System' or 'Tool'\n• Consider branding and user recognition"),
		model.NewField("Project Description", text(3, ""), true,
			"Describe what your application does and why it's valuable:\n• Focus on user benefits and problems solved\n• Mention key features and capabilities\n• Keep it concise but comprehensive"),
		model.NewField("Target Users", text(2, ""), true,
			"Who will use this application?\n• Primary users: 'Small business owners managing inventory'\n• Secondary users: 'Employees tracking daily tasks'\n• User personas help guide design decisions"),
		model.NewField("Core Features", text(6, ""), true,
			"List the main features your application must have:\n• User authentication and profiles\n• Data visualization with charts\n• Export functionality (PDF, CSV)\n• Real-time notifications\n• Search and filtering\n\nPrioritize essential features first."),
	}
	fields = append(fields, spec.fields...)
	fields = append(fields,
		model.NewField("Technical Requirements", text(4, ""), false,
			"Specify technical constraints and requirements:\n• Performance: Load time under 2 seconds\n• Scalability: Support 10,000 concurrent users\n• Security: Encrypt sensitive data\n• Compatibility: Support modern browsers/OS versions\n• Accessibility: WCAG 2.1 compliance"),
		model.NewField("Dependencies", text(3, ""), false,
			"List external dependencies:\n• Third-party libraries and versions\n• External APIs and services\n• Database requirements\n• System dependencies\n• Development tools"),
		model.NewField("Testing Strategy", text(3, ""), false,
			"Define your testing approach:\n• Unit tests for core business logic\n• Integration tests for API endpoints\n• End-to-end tests for user workflows\n• Performance tests for load handling\n• Security tests for vulnerabilities"),
		model.NewField("Deployment", text(2, ""), false,
			"How will you deploy your application?\n• Cloud platforms: AWS, Azure, Google Cloud\n• Containerization: Docker, Kubernetes\n• CI/CD pipelines: GitHub Actions, Jenkins\n• Monitoring: Application performance monitoring\n• Backup and recovery strategies"),
	)

	sections := []model.Section{
		{Field: "Project Name", Header: "PROJECT:", Tag: "name", Inline: true, Fallback: "Unnamed Application", Group: "project_info"},
		{Title: "Application Type", Header: "TYPE:", Tag: "type", Inline: true, Static: spec.title, Group: "project_info"},
		{Field: "Project Description", Header: "DESCRIPTION:", Tag: "description", Inline: true, Fallback: noDescription, Group: "project_info"},
		{Field: "Target Users", Header: "TARGET USERS:", Tag: "target_audience", Fallback: notSpecified},
		{Field: "Core Features", Header: "CORE FEATURES:", Tag: "core_features", Items: "item", Fallback: "No features specified"},
	}
	sections = append(sections, spec.stack...)
	sections = append(sections, spec.sections...)
	sections = append(sections,
		model.Section{Field: "Technical Requirements", Header: "TECHNICAL REQUIREMENTS:", Items: "requirement"},
		model.Section{Field: "Dependencies", Header: "DEPENDENCIES:", Items: "item"},
		model.Section{Field: "Testing Strategy", Header: "TESTING STRATEGY:", Items: "item"},
		model.Section{Field: "Deployment", Header: "DEPLOYMENT:", Tag: "deployment_plan"},
	)

	return withChecklists(model.Template{
		Kind:     spec.kind,
		Title:    spec.title,
		Envelope: applicationEnvelope,
		Fields:   fields,
		Sections: sections,
	})
}

// stackLine renders as "HEADER value" in text layouts and as an attribute
// element inside <technical_stack> in XML.
func stackLine(field, header, tag, attribute string) model.Section {
	return model.Section{
		Field:     field,
		Header:    header,
		Tag:       tag,
		Inline:    true,
		Group:     technicalStack,
		Attribute: attribute,
	}
}

// block renders a type specific field under its upper-cased label.
func block(field string) model.Section {
	header := strings.ToUpper(strings.ReplaceAll(field, " ", "_")) + ":"
	return model.Section{Field: field, Header: header}
}

func webApp() appSpec {
	styling := block("Styling/CSS")
	styling.Tag = "styling"
	styling.Group = technicalStack
	styling.Attribute = "framework"

	return appSpec{
		kind:  model.KindWebApp,
		title: "Web App",
		fields: []model.Field{
			model.NewField("Frontend Framework", choice("React", "Vue.js", "Angular", "Svelte", "Next.js", "Nuxt.js", "Vanilla JavaScript", "TypeScript", "jQuery"), false,
				"Choose your frontend technology:\n• React: Large ecosystem, component-based\n• Vue.js: Gentle learning curve, flexible\n• Angular: Full framework, TypeScript-first\n• Svelte: Compile-time optimization\n• Next.js: React with SSR/SSG\n• Nuxt.js: Vue with SSR/SSG\n• Vanilla JavaScript: No framework dependencies\n• TypeScript: Type-safe JavaScript\n• jQuery: Legacy support, simple DOM manipulation"),
			model.NewField("Backend Framework", choice("Python (Django)", "Python (Flask)", "Python (FastAPI)", "Node.js (Express)", "Node.js (NestJS)", "Ruby on Rails", "PHP (Laravel)", "Java (Spring Boot)", "C# (ASP.NET Core)", "Go (Gin)", "Rust (Actix)"), true,
				"Select your backend framework:\n• Django: Python, batteries included, rapid development\n• Flask: Python, lightweight, flexible\n• FastAPI: Python, modern, automatic API docs\n• Express: Node.js, minimal, flexible\n• NestJS: Node.js, TypeScript, enterprise-grade\n• Rails: Ruby, convention over configuration\n• Laravel: PHP, elegant syntax, full-featured\n• Spring Boot: Java, enterprise, microservices\n• ASP.NET Core: C#, high performance, cross-platform\n• Gin: Go, fast, minimal\n• Actix: Rust, extremely fast, safe"),
			model.NewField("Database", choice("PostgreSQL", "MySQL", "MongoDB", "SQLite", "Redis", "Cassandra", "DynamoDB", "Firebase"), true,
				"Choose your database:\n• PostgreSQL: Advanced features, JSON support, ACID\n• MySQL: Reliable, widely supported, fast\n• MongoDB: Document-based, flexible schema\n• SQLite: Lightweight, serverless, embedded\n• Redis: In-memory, caching, pub/sub\n• Cassandra: Distributed, high availability\n• DynamoDB: AWS NoSQL, serverless\n• Firebase: Google, real-time, easy setup"),
			model.NewField("Authentication", text(2, ""), false,
				"Specify authentication requirements:\n• Email/password with verification\n• OAuth (Google, GitHub, Facebook, Apple)\n• Two-factor authentication (2FA)\n• Role-based access control (RBAC)\n• JWT tokens with refresh\n• Session management\n• Single Sign-On (SSO)"),
			model.NewField("Styling/CSS", choice("Tailwind CSS", "Bootstrap", "Material-UI", "Ant Design", "Chakra UI", "Styled Components", "CSS Modules", "SCSS/Sass", "Vanilla CSS"), false,
				"Choose your styling approach:\n• Tailwind CSS: Utility-first, highly customizable\n• Bootstrap: Component library, responsive\n• Material-UI: Google's Material Design\n• Ant Design: Enterprise-class UI language\n• Chakra UI: Modular, accessible components\n• Styled Components: CSS-in-JS\n• CSS Modules: Scoped CSS\n• SCSS/Sass: CSS preprocessor\n• Vanilla CSS: Pure CSS, no dependencies"),
		},
		stack: []model.Section{
			stackLine("Frontend Framework", "FRONTEND:", "frontend", "framework"),
			stackLine("Backend Framework", "BACKEND:", "backend", "framework"),
			stackLine("Database", "DATABASE:", "database", "type"),
		},
		sections: []model.Section{block("Authentication"), styling},
	}
}

func desktopApp() appSpec {
	return appSpec{
		kind:  model.KindDesktopApp,
		title: "Desktop App",
		fields: []model.Field{
			model.NewField("Desktop Framework", choice("Electron", "Python (Tkinter)", "Python (PyQt/PySide)", "Python (Kivy)", "C# (WPF)", "C# (WinUI)", "Java (Swing)", "Java (JavaFX)", "C++ (Qt)", "Rust (Tauri)", "Go (Fyne)"), true,
				"Choose your desktop framework:\n• Electron: Web technologies, cross-platform, large apps\n• Tkinter: Python built-in, simple GUIs\n• PyQt/PySide: Professional Python GUIs, native look\n• Kivy: Python, touch-friendly, mobile support\n• WPF: Modern Windows applications, XAML\n• WinUI: Latest Windows UI framework\n• Swing: Cross-platform Java GUIs, mature\n• JavaFX: Modern Java UI, rich graphics\n• Qt: C++, native performance, cross-platform\n• Tauri: Rust backend, web frontend, small size\n• Fyne: Go, simple, cross-platform"),
			model.NewField("Target OS", choice("Windows", "macOS", "Linux", "Cross-platform"), true,
				"Select target operating systems:\n• Windows: Largest desktop market, .NET ecosystem\n• macOS: Premium user base, App Store\n• Linux: Developer and enterprise users\n• Cross-platform: Maximum reach, consistent experience"),
			model.NewField("Installation Method", text(2, ""), false,
				"How will users install your app?\n• Installer package (.msi, .dmg, .deb, .rpm)\n• Portable executable (no installation)\n• App store distribution (Microsoft Store, Mac App Store)\n• Package managers (Chocolatey, Homebrew, apt)\n• Auto-updater integration\n• Silent/enterprise deployment"),
			model.NewField("UI Library", choice("Native OS", "Material Design", "Fluent Design", "Custom Theme"), false,
				"Choose your UI design approach:\n• Native OS: Platform-specific look and feel\n• Material Design: Google's design language\n• Fluent Design: Microsoft's design system\n• Custom Theme: Branded, unique appearance"),
		},
		stack: []model.Section{
			stackLine("Desktop Framework", "FRAMEWORK:", "desktop", "framework"),
		},
		sections: []model.Section{block("Target OS"), block("UI Library"), block("Installation Method")},
	}
}

func cliTool() appSpec {
	return appSpec{
		kind:  model.KindCLITool,
		title: "CLI Tool",
		fields: []model.Field{
			model.NewField("CLI Framework", choice("Python (Click)", "Python (argparse)", "Python (Typer)", "Node.js (Commander)", "Node.js (Yargs)", "Go (Cobra)", "Rust (Clap)", "C# (System.CommandLine)", "Java (Picocli)"), true,
				"Choose your CLI framework:\n• Click: Python, decorator-based, powerful features\n• argparse: Python built-in, standard library\n• Typer: Python, modern, type hints, FastAPI style\n• Commander: Node.js, feature-rich, popular\n• Yargs: Node.js, flexible, interactive\n• Cobra: Go, used by Docker, Kubernetes\n• Clap: Rust, performance-focused, derive macros\n• System.CommandLine: C#, modern .NET CLI\n• Picocli: Java, annotation-based, GraalVM ready"),
			model.NewField("Command Structure", text(3, ""), true,
				"Define your command structure:\n• mytool init --config config.json\n• mytool process --input file.txt --output result.txt\n• mytool status --verbose\n• mytool deploy --env production\n\nInclude subcommands, options, and arguments."),
			model.NewField("Configuration", text(2, ""), false,
				"How will your CLI be configured?\n• Configuration files (JSON, YAML, TOML, INI)\n• Environment variables\n• Command-line flags and options\n• Interactive setup wizard\n• Config file auto-generation\n• Profile/workspace support"),
			model.NewField("Output Format", choice("Plain Text", "JSON", "YAML", "Table", "Progress Bars", "Interactive"), false,
				"Choose output formatting:\n• Plain Text: Simple, readable output\n• JSON: Machine-readable, structured\n• YAML: Human-readable, structured\n• Table: Tabular data display\n• Progress Bars: Long-running operations\n• Interactive: Menus, prompts, TUI"),
		},
		stack: []model.Section{
			stackLine("CLI Framework", "CLI FRAMEWORK:", "cli", "framework"),
		},
		sections: []model.Section{block("Command Structure"), block("Output Format"), block("Configuration")},
	}
}

func apiService() appSpec {
	return appSpec{
		kind:  model.KindAPIService,
		title: "API Service",
		fields: []model.Field{
			model.NewField("API Framework", choice("Python (FastAPI)", "Python (Django REST)", "Python (Flask-RESTful)", "Node.js (Express)", "Node.js (NestJS)", "Java (Spring Boot)", "C# (ASP.NET Core)", "Go (Gin)", "Go (Echo)", "Rust (Actix)", "Ruby (Rails API)"), true,
				"Choose your API framework:\n• FastAPI: Python, automatic docs, type hints, async\n• Django REST: Python, batteries included, serializers\n• Flask-RESTful: Python, lightweight, flexible\n• Express: Node.js, minimal, middleware-based\n• NestJS: Node.js, TypeScript, decorator-based\n• Spring Boot: Java, enterprise-grade, microservices\n• ASP.NET Core: C#, high performance, cross-platform\n• Gin: Go, fast HTTP router, minimal\n• Echo: Go, high performance, middleware\n• Actix: Rust, extremely fast, actor-based\n• Rails API: Ruby, convention over configuration"),
			model.NewField("API Type", choice("REST", "GraphQL", "gRPC", "WebSocket", "Server-Sent Events"), true,
				"Select your API type:\n• REST: Standard HTTP methods, widely supported\n• GraphQL: Flexible queries, single endpoint, type-safe\n• gRPC: High performance, binary protocol, streaming\n• WebSocket: Real-time, bidirectional communication\n• Server-Sent Events: Real-time, server-to-client"),
			model.NewField("Authentication", choice("JWT", "OAuth 2.0", "API Keys", "Basic Auth", "Bearer Token", "mTLS"), true,
				"Choose authentication method:\n• JWT: Stateless, scalable tokens, claims-based\n• OAuth 2.0: Industry standard, secure, delegated auth\n• API Keys: Simple, good for service-to-service\n• Basic Auth: Simple but less secure, base64 encoded\n• Bearer Token: Token-based, stateless\n• mTLS: Mutual TLS, certificate-based, high security"),
			model.NewField("Documentation", choice("OpenAPI/Swagger", "GraphQL Playground", "Postman", "Insomnia", "Custom Docs"), false,
				"API documentation approach:\n• OpenAPI/Swagger: Standard, interactive docs\n• GraphQL Playground: GraphQL schema explorer\n• Postman: Collection-based, team collaboration\n• Insomnia: REST client with documentation\n• Custom Docs: Tailored documentation site"),
		},
		stack: []model.Section{
			stackLine("API Framework", "API FRAMEWORK:", "api", "framework"),
		},
		sections: []model.Section{block("Authentication"), block("API Type"), block("Documentation")},
	}
}

func mobileApp() appSpec {
	return appSpec{
		kind:  model.KindMobileApp,
		title: "Mobile App",
		fields: []model.Field{
			model.NewField("Mobile Framework", choice("React Native", "Flutter", "Native iOS (Swift)", "Native Android (Kotlin)", "Xamarin", "Ionic", "Cordova/PhoneGap", "Unity (Games)", "Expo"), true,
				"Choose your mobile framework:\n• React Native: JavaScript, code sharing, large community\n• Flutter: Dart, high performance, single codebase\n• Native iOS: Swift, platform-specific, best performance\n• Native Android: Kotlin, platform-specific, Material Design\n• Xamarin: C#, Microsoft ecosystem, native performance\n• Ionic: Web technologies, hybrid apps, plugins\n• Cordova/PhoneGap: HTML/CSS/JS, web-based\n• Unity: Game development, 3D/2D, cross-platform\n• Expo: React Native with managed workflow"),
			model.NewField("Target Platforms", choice("iOS only", "Android only", "Both iOS and Android", "Web Progressive App"), true,
				"Select target platforms:\n• iOS only: Premium market, consistent hardware, App Store\n• Android only: Larger market share, diverse devices, Google Play\n• Both: Maximum reach, more development effort\n• Web Progressive App: Web-based, app-like experience"),
			model.NewField("Device Features", text(3, ""), false,
				"What device features will you use?\n• Camera for photo/video capture\n• GPS for location services and mapping\n• Push notifications for engagement\n• Biometric authentication (Face ID, Touch ID)\n• Offline data storage and sync\n• Accelerometer/Gyroscope for motion\n• Bluetooth for device connectivity\n• NFC for payments/data transfer\n• Background processing"),
			model.NewField("App Store Strategy", text(2, ""), false,
				"Distribution and monetization:\n• Free app with ads\n• Paid app (one-time purchase)\n• Freemium with in-app purchases\n• Subscription model\n• Enterprise distribution\n• Beta testing strategy (TestFlight, Play Console)\n• App Store Optimization (ASO)"),
			model.NewField("Backend Services", choice("Firebase", "AWS Amplify", "Supabase", "Custom API", "Parse", "Back4App"), false,
				"Choose backend services:\n• Firebase: Google, real-time database, auth, hosting\n• AWS Amplify: Amazon, full-stack, GraphQL\n• Supabase: Open source Firebase alternative\n• Custom API: Your own backend service\n• Parse: Open source, self-hosted\n• Back4App: Parse hosting service"),
		},
		stack: []model.Section{
			stackLine("Mobile Framework", "MOBILE FRAMEWORK:", "mobile", "framework"),
		},
		sections: []model.Section{block("Target Platforms"), block("Device Features"), block("App Store Strategy"), block("Backend Services")},
	}
}
