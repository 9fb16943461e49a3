// Package seed holds the fixed starter dataset the persistence backends
// materialize on first use.
package seed

import (
	"time"

	"inkwell/internal/core/posts"
)

const dateLayout = "January 2, 2006"

// Posts returns the seed collection with createdAt dates computed
// relative to now, newest first.
func Posts(now time.Time) []posts.Post {
	daysAgo := func(d int) string {
		return now.AddDate(0, 0, -d).Format(dateLayout)
	}

	return []posts.Post{
		{
			ID:         "1",
			Slug:       "getting-started-with-nextjs-14",
			Title:      "Getting Started with Next.js 14",
			Author:     "Jane Doe",
			CreatedAt:  daysAgo(1),
			Tags:       []string{"Tech", "Next.js", "Web Dev"},
			CoverImage: "https://placehold.co/1200x600.png",
			Content: `
## Welcome to the Future of Web Development

Next.js 14 brings a new level of performance and developer experience. In this post, we'll explore the key features and how to get started with building your first Next.js 14 application.

### Key Features:
- **Turbopack**: A new, high-speed bundler written in Rust.
- **Server Actions**: Simplified data mutations without the need for API routes.
- **App Router**: A new paradigm for building applications with nested layouts and routes.

` + "```javascript\n// Example of a Server Action\n'use server'\n \nexport async function myAction() {\n  // ...\n}\n```" + `

Getting started is as simple as running ` + "`npx create-next-app@latest`" + `. Join us on this journey to build faster, more efficient web applications.
`,
		},
		{
			ID:         "2",
			Slug:       "a-guide-to-mindful-design",
			Title:      "A Guide to Mindful Design",
			Author:     "John Smith",
			CreatedAt:  daysAgo(3),
			Tags:       []string{"Design", "UI/UX", "Productivity"},
			CoverImage: "https://placehold.co/1200x600.png",
			Content: `
## Designing with Intent

Mindful design is about creating interfaces that are not only beautiful but also intuitive and respectful of the user's attention. It's about making conscious choices that lead to better user experiences.

### Principles of Mindful Design:
1.  **Clarity over Clutter**: Prioritize essential information.
2.  **Respect User's Time**: Make interactions efficient.
3.  **Provide Feedback**: Ensure users know the result of their actions.

> Good design is as little design as possible. - Dieter Rams

By applying these principles, we can create products that people love to use.
`,
		},
		{
			ID:         "3",
			Slug:       "exploring-the-alps-a-travel-diary",
			Title:      "Exploring the Alps: A Travel Diary",
			Author:     "Alex Johnson",
			CreatedAt:  daysAgo(5),
			Tags:       []string{"Travel", "Adventure", "Photography"},
			CoverImage: "https://placehold.co/1200x600.png",
			Content: `
## A Journey Through the Mountains

The Alps are a breathtaking wonder of nature. This post is a collection of memories, photos, and tips from my 10-day trek through the Swiss Alps.

![A beautiful mountain landscape](https://placehold.co/800x400.png)
*A photo from the trail.*

### Highlights:
- **The Matterhorn**: Seeing the iconic peak at sunrise.
- **Local Cuisine**: Cheese fondue is a must-try!
- **Hiking Trails**: Routes for all skill levels.

Whether you're an avid hiker or just love beautiful scenery, the Alps are a destination that should be on your list.
`,
		},
		{
			ID:         "4",
			Slug:       "the-rise-of-generative-ai",
			Title:      "The Rise of Generative AI",
			Author:     "Samantha Bee",
			CreatedAt:  daysAgo(8),
			Tags:       []string{"Tech", "AI", "Future"},
			CoverImage: "https://placehold.co/1200x600.png",
			Content: `
## A New Era of Technology

Generative AI is transforming industries, from art and music to software development. Models like GPT-4 and DALL-E are capable of creating novel content that was once thought to be exclusively human.

### How does it work?
Generative models are trained on vast datasets and learn patterns to generate new, original outputs. This has profound implications for the future of work and creativity.

` + "```python\n# Example of using a pseudo-AI library\nfrom awesome_ai import Generator\n\ntext_generator = Generator(model=\"super-creative-v1\")\ngenerated_text = text_generator.prompt(\"Write a poem about robots.\")\nprint(generated_text)\n```" + `

The potential is limitless, but it also raises important ethical questions that we must address as a society.
`,
		},
		{
			ID:         "5",
			Slug:       "mastering-tailwind-css",
			Title:      "Mastering Tailwind CSS for Rapid UI Development",
			Author:     "Jane Doe",
			CreatedAt:  daysAgo(12),
			Tags:       []string{"Tech", "Web Dev", "CSS"},
			CoverImage: "https://placehold.co/1200x600.png",
			Content: `
## Build UIs Faster Than Ever

Tailwind CSS is a utility-first CSS framework that allows for rapid development without ever leaving your HTML. It's a different approach compared to frameworks like Bootstrap or Foundation, and it's incredibly powerful.

### Why Tailwind?
- **Highly Customizable**: Configure everything from colors to spacing.
- **No Naming Conventions**: No more ` + "`.btn-primary--large`" + ` classes.
- **Performance**: Ship only the CSS you actually use.

It has a learning curve, but once you get the hang of it, you'll be building beautiful, custom designs in record time.
`,
		},
		{
			ID:         "6",
			Slug:       "the-art-of-storytelling-in-marketing",
			Title:      "The Art of Storytelling in Marketing",
			Author:     "John Smith",
			CreatedAt:  daysAgo(15),
			Tags:       []string{"Marketing", "Business", "Storytelling"},
			CoverImage: "https://placehold.co/1200x600.png",
			Content: `
## Connect with Your Audience on a Deeper Level

Facts tell, but stories sell. In a crowded marketplace, storytelling is the most powerful tool to capture attention and build a loyal brand following.

### Key Elements of a Great Brand Story:
1.  **A Hero**: Your customer.
2.  **A Goal**: What they want to achieve.
3.  **An Obstacle**: The problem they face.
4.  **A Guide**: Your brand, helping them succeed.

By weaving these elements into your marketing, you create a narrative that resonates emotionally with your audience.
`,
		},
		{
			ID:         "7",
			Slug:       "sustainable-living-small-changes-big-impact",
			Title:      "Sustainable Living: Small Changes, Big Impact",
			Author:     "Emily White",
			CreatedAt:  daysAgo(20),
			Tags:       []string{"Lifestyle", "Sustainability"},
			CoverImage: "https://placehold.co/1200x600.png",
			Content: `
## Living a Greener Life

Adopting a sustainable lifestyle doesn't have to be overwhelming. Small, consistent changes can collectively make a huge difference for our planet.

### Easy Steps to Start:
- **Reduce, Reuse, Recycle**: The classic for a reason.
- **Shop Local**: Support local farmers and reduce your carbon footprint.
- **Conserve Water**: Shorter showers, fixing leaks, and being mindful of usage.

Let's work together to create a healthier planet for future generations.
`,
		},
	}
}
