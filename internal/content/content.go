// Package content holds the static marketing copy shared by the terminal and
// web showcases.
package content

import "github.com/rusenback/zephyria/internal/model"

const (
	Brand       = "ZEPHYRIA"
	BrandMark   = "Z"
	HeroBadge   = "JIT JoyboyVM Engine"
	HeroTitle   = "Scale Beyond"
	HeroAccent  = "1 Million TPS"
	HeroSubline = "Zephyria is the world's first register-allocated EVM blockchain. " +
		"Built for speed, efficiency, and hyper-scale decentralized applications."

	PrimaryAction   = "Launch Explorer"
	SecondaryAction = "Read Whitepaper"
	NavAction       = "Build Now"

	GridTitle    = "Engineered for Velocity"
	GridSubtitle = "We've re-written the core of the blockchain stack to eliminate bottlenecks at every layer."

	PerfTitle   = "Unrivaled Performance,"
	PerfAccent  = "Zero Optimization Debt."
	ChartTitle  = "Live Performance"
	ChartSource = "JoyboyVM execution metrics"
	ChartStatus = "STABLE OPS"

	CTATitle = "Build the Future on Zephyria"
	CTABody  = "Start building sub-second finality dApps today. Fully EVM compatible, " +
		"zero learning curve for Solidity developers."

	CTAPrimary   = "Get Started"
	CTASecondary = "View on GitHub"

	FooterTagline = "The hyper-performance EVM compatible blockchain network built on " +
		"JoyboyVM and the custom Zephyr storage engine."

	Copyright = "© 2024 Zephyria Foundation. All rights reserved."
)

// Nav is the top navigation, in display order
var Nav = []string{"Ecosystem", "Technology", "Network", "Developers"}

// Features is the four-card tech grid
var Features = []model.Feature{
	{
		ID:          "joyboyvm",
		Title:       "JoyboyVM JIT",
		Description: "Our proprietary register-allocated JIT EVM. By moving beyond stack-based execution, we achieve silicon-level efficiency.",
		Icon:        "cpu",
		Stats:       "500k - 1M+ TPS",
	},
	{
		ID:          "zephyr-db",
		Title:       "Ultra-Fast DB",
		Description: "Custom state storage engine optimized for high-concurrency IO and zero-latency Merkle tree updates.",
		Icon:        "database",
		Stats:       "< 1ms Seek",
	},
	{
		ID:          "network",
		Title:       "P2P Optimized",
		Description: "A custom networking layer designed for rapid block propagation and massive node scalability.",
		Icon:        "share-2",
		Stats:       "10Gbps Ready",
	},
	{
		ID:          "security",
		Title:       "Quantum Secure",
		Description: "Post-quantum cryptographic primitives baked into the core protocol for long-term data integrity.",
		Icon:        "shield",
		Stats:       "AES-GCM-256",
	},
}

// Pillars are the two bullet points beside the live chart
var Pillars = []model.Feature{
	{
		ID:          "jit-core",
		Title:       "JoyboyVM JIT Core",
		Description: "Our JIT compiler achieves up to 10x speedup over standard interpreter-based EVMs by compiling bytecode into optimized machine instructions on the fly.",
		Icon:        "activity",
	},
	{
		ID:          "parallel",
		Title:       "Parallel Execution Model",
		Description: "Optimistic parallelization allows non-conflicting transactions to be processed simultaneously across all CPU cores.",
		Icon:        "database",
	},
}

// Highlights are the headline numbers under the pillars
var Highlights = []model.Highlight{
	{Value: "500k+", Label: "Unoptimized TPS"},
	{Value: "1.2M+", Label: "Post-Optimization"},
}

// Footer is the link columns at the bottom of the page
var Footer = []model.LinkGroup{
	{Title: "Technology", Links: []string{"JoyboyVM", "ZephyrDB", "P2P Protocol", "Roadmap"}},
	{Title: "Community", Links: []string{"Twitter / X", "Discord", "Telegram", "Governance"}},
}

// Legal is the policy links beside the copyright line
var Legal = []string{"Privacy Policy", "Terms of Service", "Cookie Policy"}

// Icons maps feature icon names to terminal glyphs
var Icons = map[string]string{
	"cpu":      "⚙",
	"zap":      "⚡",
	"database": "⛁",
	"shield":   "⛨",
	"share-2":  "⇄",
	"activity": "∿",
}

// Icon returns the glyph for name, or a bullet when unknown
func Icon(name string) string {
	if g, ok := Icons[name]; ok {
		return g
	}
	return "•"
}
