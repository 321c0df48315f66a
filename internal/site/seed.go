package site

// Seed content for freshly created projects.

// DefaultCss is the stylesheet a new project starts with.
const DefaultCss = `/* Global site styles */
body { background: white; }
.hero { background: #f5f5f5; border: 1px solid #e5e5e5; border-radius: .6rem; }
.btn { background: #fff; }
`

// DefaultIndexHtml is the body fragment seeded into the home page.
const DefaultIndexHtml = `<section class="hero">
  <h2>Welcome!</h2>
  <p>Your new site is ready. Edit this content and export.</p>
  <a class="btn" href="#">Get started</a>
</section>
`
