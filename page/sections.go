package page

import (
	"fmt"
	"strconv"

	"github.com/testmaster-app/testmaster/auth"
	"github.com/testmaster-app/testmaster/content"
	"github.com/testmaster-app/testmaster/view"
)

const (
	BrandName = "TestMaster"

	heroInitialClass = "opacity-0 translate-y-8"
	heroMountedClass = "opacity-100 translate-y-0"

	primaryButtonClass   = "bg-gradient-to-r from-blue-600 to-purple-600 hover:from-blue-700 hover:to-purple-700 text-white px-8 py-3 rounded-lg font-semibold transition-all transform hover:scale-105"
	secondaryButtonClass = "border border-blue-500 text-blue-400 hover:bg-blue-500 hover:text-white px-8 py-3 rounded-lg font-semibold transition-all"
	navButtonClass       = "bg-blue-600 hover:bg-blue-700 text-white px-4 py-2 rounded-lg transition-colors"
	ghostButtonClass     = "text-gray-300 hover:text-white transition-colors"
	cardClass            = "bg-white/5 backdrop-blur-sm rounded-xl border border-white/10"
)

// link wraps an action in an anchor to a routed path.
func link(path string, action *view.Node) *view.Node {
	return view.A(view.Href(path), action)
}

// Greeting returns the nav welcome line for state.
func Greeting(state auth.State) string {
	if name := state.FirstName(); name != "" {
		return fmt.Sprintf("Welcome, %s!", name)
	}
	return "Welcome!"
}

func (l *Landing) header(state auth.State) *view.Node {
	var actions *view.Node
	if state.IsAuthenticated {
		actions = l.tag("user-section", "User Section", "Authenticated user welcome area",
			view.Div(view.Class("flex items-center space-x-4"),
				l.tag("welcome-message", "Welcome Message", "Welcome message for authenticated user",
					view.Span(view.Class("text-gray-300"), view.Text(Greeting(state)))),
				link(DashboardPath, l.tag("nav-dashboard-button", "Navigation Dashboard Button",
					"Dashboard button in navigation header for authenticated users",
					view.Button("", view.Class(navButtonClass),
						icon(content.IconBarChart, "w-4 h-4 mr-2"),
						view.Text("Dashboard")))),
			))
	} else {
		actions = l.tag("auth-buttons", "Authentication Buttons", "Login and register buttons for unauthenticated users",
			view.Div(view.Class("flex items-center space-x-2"),
				link(LoginPath, l.tag("nav-login-button", "Navigation Login Button", "Login button in navigation header",
					view.Button("ghost", view.Class(ghostButtonClass), view.Text("Login")))),
				link(RegisterPath, l.tag("nav-register-button", "Navigation Register Button", "Get started button in navigation header",
					view.Button("", view.Class(navButtonClass), view.Text("Start Testing")))),
			))
	}

	return l.tag("main-header", "Main Header", "Primary site header with navigation",
		view.Header(view.Class("container mx-auto px-4 py-6"),
			l.tag("main-nav", "Main Navigation", "Primary navigation bar",
				view.Nav(view.Class("flex items-center justify-between"),
					l.tag("logo-section", "Logo Section", "Company logo and brand name",
						view.Div(view.Class("flex items-center space-x-2"),
							view.Div(view.Class("w-8 h-8 bg-gradient-to-r from-blue-500 to-purple-500 rounded-lg flex items-center justify-center"),
								icon(content.IconBrain, "w-5 h-5 text-white")),
							l.tag("brand-name", "Brand Name", "TestMaster brand name",
								view.Span(view.Class("text-xl font-bold text-white"), view.Text(BrandName))),
						)),
					l.tag("nav-actions", "Navigation Actions", "Navigation buttons and user menu",
						view.Div(view.Class("flex items-center space-x-4"),
							l.tag("docs-button", "Docs Button", "Link to documentation",
								view.Button("ghost", view.Class(ghostButtonClass), view.Text("Help"))),
							actions,
						)),
				))))
}

func (l *Landing) hero(state auth.State, mounted bool) *view.Node {
	visual := heroInitialClass
	if mounted {
		visual = heroMountedClass
	}

	path, label := RegisterPath, "Start Testing Free"
	if state.IsAuthenticated {
		path, label = DashboardPath, "Go to Dashboard"
	}
	primary := link(path, l.tag("hero-start-testing", "Start Testing Button",
		"Primary call-to-action button for starting to use the platform",
		view.Button("", view.Class(primaryButtonClass), view.Text(label))))

	return l.tag("hero-section", "Hero Section", "",
		l.tag("hero-content", "Hero Content", "Main hero Section with title and call-to-action",
			view.Section(view.Class("container mx-auto px-4 py-20 text-center"),
				l.tag("hero-content-wrapper", "Hero Content Wrapper", "Animated wrapper for hero content",
					view.Div(
						view.Class("transition-all duration-1000 "+visual),
						view.Data("mount-transition", ""),
						view.Data("mounted", strconv.FormatBool(mounted)),
						view.Data("mount-class", heroMountedClass),
						view.Data("initial-class", heroInitialClass),
						l.tag("hero-title", "Hero Title", "Main hero title showcasing the testing platform",
							view.H1(view.Class("text-5xl md:text-7xl font-bold text-white mb-6"),
								view.Text("Smart Testing"),
								l.tag("platform-highlight", "Platform Highlight", "Highlighted platform text in gradient",
									view.Span(view.Class("bg-gradient-to-r from-blue-400 to-purple-400 bg-clip-text text-transparent"),
										view.Text(" Platform"))),
							)),
						l.tag("hero-description", "Hero Description", "Hero Section description explaining the platform benefits",
							view.P(view.Class("text-xl text-gray-300 mb-8 max-w-2xl mx-auto"),
								view.Text("Create, manage, and analyze tests with our intelligent testing platform. "+
									"Perfect for educators, trainers, and organizations seeking comprehensive assessment solutions."))),
						l.tag("hero-cta-buttons", "Hero CTA Buttons", "Call-to-action buttons in hero Section",
							view.Div(view.Class("flex flex-col sm:flex-row gap-4 justify-center"),
								primary,
								l.tag("hero-demo-button", "View Demo Button", "Secondary button to view a demo",
									view.Button("outline", view.Class(secondaryButtonClass), view.Text("View Demo"))),
							)),
					)))))
}

// sectionHeading is the centered title block above each card grid.
func sectionHeading(title, subtitle string) *view.Node {
	return view.Div(view.Class("text-center mb-16"),
		view.H2(view.Class("text-4xl font-bold text-white mb-4"), view.Text(title)),
		view.P(view.Class("text-gray-300 max-w-2xl mx-auto"), view.Text(subtitle)),
	)
}

// card builds one grid card keyed by its position in the source table.
func card(index int, class string, children ...view.Arg) *view.Node {
	args := append([]view.Arg{view.Key(strconv.Itoa(index)), view.Class(cardClass + " " + class), view.Data("card", "")}, children...)
	return view.Div(args...)
}

func (l *Landing) statsSection() *view.Node {
	grid := view.Div(view.Class("grid grid-cols-2 md:grid-cols-4 gap-6"), view.Data("grid", "stats"))
	for i, stat := range l.tables.Stats {
		grid.Children = append(grid.Children, l.tag(content.StatCardID(i),
			stat.Label+" Stat Card",
			fmt.Sprintf("Statistical card showing %s: %s", stat.Label, stat.Value),
			card(i, "p-6 text-center",
				view.Div(view.Class("text-2xl font-bold text-white mb-2"), view.Text(stat.Value)),
				view.Div(view.Class("text-gray-400"), view.Text(stat.Label)),
			)))
	}

	return l.tag("stats-section", "Stats Section", "",
		l.tag("stats-content", "Stats Content", "Statistics Section showing platform metrics",
			view.Section(view.Class("container mx-auto px-4 py-12"),
				l.tag("stats-grid", "Stats Grid", "Grid container for statistics cards", grid))))
}

func (l *Landing) featuresSection() *view.Node {
	grid := view.Div(view.Class("grid md:grid-cols-2 lg:grid-cols-4 gap-6"), view.Data("grid", "features"))
	for i, f := range l.tables.Features {
		grid.Children = append(grid.Children, l.tag(content.FeatureCardID(i),
			f.Title+" Feature Card",
			fmt.Sprintf("Feature card highlighting %s: %s", f.Title, f.Description),
			card(i, "p-6 hover:border-blue-500/50 transition-all",
				view.Div(view.Class("mb-4"), icon(f.Icon, "w-8 h-8 "+tint(f.Tint))),
				view.H3(view.Class("text-xl font-semibold text-white mb-2"), view.Text(f.Title)),
				view.P(view.Class("text-gray-400"), view.Text(f.Description)),
			)))
	}

	return l.tag("features-section", "Features Section", "",
		view.Section(view.Class("container mx-auto px-4 py-20"),
			sectionHeading("Powerful Testing Features",
				"Everything you need to create, manage, and analyze comprehensive assessments"),
			grid))
}

func (l *Landing) testTypesSection() *view.Node {
	grid := view.Div(view.Class("grid md:grid-cols-2 gap-6"), view.Data("grid", "test-types"))
	for i, tt := range l.tables.TestTypes {
		grid.Children = append(grid.Children, l.tag(content.TestTypeCardID(i),
			tt.Title+" Test Type Card",
			fmt.Sprintf("Test type card for %s: %s", tt.Title, tt.Description),
			card(i, "p-8 hover:border-blue-500/50 transition-all group",
				view.Div(view.Class("flex items-start space-x-4"),
					view.Div(view.Class("w-12 h-12 rounded-lg bg-gradient-to-r "+gradient(tt.Gradient)+" flex items-center justify-center flex-shrink-0"),
						icon(tt.Icon, "w-6 h-6 "+tint(tt.Tint))),
					view.Div(view.Class("flex-1"),
						view.H3(view.Class("text-xl font-semibold text-white mb-2 group-hover:text-blue-400 transition-colors"), view.Text(tt.Title)),
						view.P(view.Class("text-gray-400"), view.Text(tt.Description)),
					),
				),
			)))
	}

	return l.tag("test-types-section", "Test Types Section", "",
		view.Section(view.Class("container mx-auto px-4 py-20"),
			sectionHeading("Test Types for Every Need",
				"From simple quizzes to comprehensive certification exams"),
			grid))
}

func (l *Landing) benefitsSection() *view.Node {
	grid := view.Div(view.Class("grid md:grid-cols-2 lg:grid-cols-4 gap-6"), view.Data("grid", "benefits"))
	for i, b := range l.tables.Benefits {
		grid.Children = append(grid.Children, l.tag(content.BenefitCardID(i),
			b.Title+" Benefit Card",
			fmt.Sprintf("Benefit card highlighting %s: %s", b.Title, b.Description),
			card(i, "p-6 text-center hover:border-blue-500/50 transition-all",
				view.Div(view.Class("w-12 h-12 mx-auto mb-4 bg-blue-500/20 rounded-lg flex items-center justify-center text-blue-400"),
					icon(b.Icon, "w-5 h-5")),
				view.H3(view.Class("text-lg font-semibold text-white mb-2"), view.Text(b.Title)),
				view.P(view.Class("text-gray-400 text-sm"), view.Text(b.Description)),
			)))
	}

	return l.tag("benefits-section", "Benefits Section", "",
		view.Section(view.Class("container mx-auto px-4 py-20"),
			sectionHeading("Why Choose TestMaster?",
				"Streamline your testing process with our comprehensive platform"),
			grid))
}

func (l *Landing) ctaSection() *view.Node {
	return l.tag("cta-section", "CTA Section", "",
		view.Section(view.Class("container mx-auto px-4 py-20"),
			view.Div(view.Class("bg-gradient-to-r from-blue-600/20 to-purple-600/20 rounded-2xl p-12 text-center border border-blue-500/30"),
				view.H2(view.Class("text-4xl font-bold text-white mb-4"), view.Text("Ready to Transform Your Testing?")),
				view.P(view.Class("text-gray-300 mb-8 max-w-2xl mx-auto"),
					view.Text("Join thousands of educators and organizations using TestMaster to create better assessments")),
				view.Div(view.Class("flex flex-col sm:flex-row gap-4 justify-center"),
					l.tag("cta-start-free", "Start Free Button", "Primary CTA button to start free trial",
						view.Button("", view.Class(primaryButtonClass),
							view.Span(view.Class("flex items-center gap-2"), icon(content.IconStar, "w-5 h-5"), view.Text("Start Free Trial")))),
					l.tag("cta-contact-sales", "Contact Sales Button", "Secondary CTA button to contact sales",
						view.Button("outline", view.Class(secondaryButtonClass),
							view.Span(view.Class("flex items-center gap-2"), icon(content.IconUsers, "w-5 h-5"), view.Text("Contact Sales")))),
				),
			)))
}

// FooterLinks are the informational links; they have no destination yet.
var FooterLinks = []string{"Privacy", "Terms", "Support"}

func (l *Landing) footer() *view.Node {
	links := view.Div(view.Class("flex space-x-6"))
	for _, name := range FooterLinks {
		links.Children = append(links.Children,
			view.A(view.Href("#"), view.Class("text-gray-400 hover:text-white transition-colors"), view.Text(name)))
	}

	return l.tag("main-footer", "Main Footer", "Site footer with links and copyright",
		view.Footer(view.Class("container mx-auto px-4 py-8 border-t border-white/10"),
			view.Div(view.Class("flex flex-col md:flex-row justify-between items-center"),
				view.Div(view.Class("text-gray-400 mb-4 md:mb-0"),
					view.Text("© 2024 TestMaster. Empowering education through intelligent testing.")),
				links,
			)))
}
