package gemini

const contentPrompt = `You are an expert content writer specializing in creating engaging and informative blog posts.

Your task is to generate a well-structured blog post in Markdown format based on the provided title.

The post should include:
- An engaging introduction.
- At least two main sections with headings (##).
- A concluding paragraph.
- Use of Markdown for formatting, such as bold text, lists, and code snippets where appropriate.

Do not include the main title in the output, as it already exists.

Blog Post Title: %s
`

const coverImagePrompt = `A high-quality, professional blog cover image for a post titled: "%s". The image should be visually appealing, relevant to the title, and suitable for a modern tech and lifestyle blog. Style: digital art, photographic, vibrant.`

const relevancePrompt = `You are an AI assistant that determines the relevance of a blog post to a given search term.

You will receive a search term, a blog post title, and a list of blog post tags.
Your task is to determine whether the blog post is relevant to the search term. Consider that the search term doesn't need to be an exact match but the overall meaning and intent of the search term and title/tags should be similar.

Search Term: %s
Blog Post Title: %s
Blog Post Tags: %s

Based on this information, determine if the blog post is relevant to the search term. Return a boolean value for isRelevant. Also provide a brief reason for your determination. Focus on if the search term, title, and tags align with the context of each other.

Output in JSON format:
{
  "isRelevant": boolean,
  "reason": string
}
`
