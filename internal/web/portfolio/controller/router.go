package controller

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mount every portfolio route. Mutations and privileged
// reads sit behind the admin gate; everything else is public.
func (c *Portfolio) RegisterRoutes(r *gin.Engine, debug bool) {
	api := r.Group("/api")

	api.POST("/login", c.Login)

	api.GET("/blogs", c.ListBlogs)
	api.GET("/blogs/:slug", c.GetBlog)
	api.GET("/projects", c.ListProjects)
	api.GET("/case-studies", c.ListCaseStudies)
	api.GET("/case-studies/:slug", c.GetCaseStudy)
	api.GET("/technologies", c.ListTechnologies)
	api.GET("/gallery", c.ListGallery)
	api.GET("/our-story", c.ListOurStory)
	api.GET("/success-stories", c.ListSuccessStories)
	api.GET("/resume", c.GetResume)
	api.POST("/contact", c.SubmitContact)
	api.POST("/init", c.Init)

	api.GET("/feed.rss", c.Feed)
	r.GET("/sitemap.xml", c.Sitemap)

	if debug {
		api.GET("/debug/case-studies", c.DebugCaseStudies)
	}

	admin := api.Group("", c.AdminRequired)

	admin.POST("/blogs", c.CreateBlog)
	admin.PUT("/blogs/:id", c.UpdateBlog)
	admin.DELETE("/blogs/:id", c.DeleteBlog)

	admin.POST("/projects", c.CreateProject)
	admin.PUT("/projects/:id", c.UpdateProject)
	admin.DELETE("/projects/:id", c.DeleteProject)

	admin.POST("/case-studies", c.CreateCaseStudy)
	admin.PUT("/case-studies/:id", c.UpdateCaseStudy)
	admin.DELETE("/case-studies/:id", c.DeleteCaseStudy)

	admin.POST("/technologies", c.CreateTechnology)
	admin.PUT("/technologies/:id", c.UpdateTechnology)
	admin.DELETE("/technologies/:id", c.DeleteTechnology)

	admin.POST("/gallery", c.CreateGallery)
	admin.PUT("/gallery/:id", c.UpdateGallery)
	admin.DELETE("/gallery/:id", c.DeleteGallery)

	admin.POST("/our-story", c.CreateOurStory)
	admin.PUT("/our-story/:id", c.UpdateOurStory)
	admin.DELETE("/our-story/:id", c.DeleteOurStory)

	admin.POST("/success-stories", c.CreateSuccessStory)
	admin.PUT("/success-stories/:id", c.UpdateSuccessStory)
	admin.DELETE("/success-stories/:id", c.DeleteSuccessStory)

	admin.POST("/resume", c.ReplaceResume)
	admin.PUT("/resume", c.UpdateResume)

	admin.GET("/contact", c.ListContacts)
	admin.GET("/contact/:id", c.GetContactByID)
	admin.PUT("/contact/:id", c.UpdateContact)
	admin.DELETE("/contact/:id", c.DeleteContact)

	// privileged reads by id, drafts included
	admin.GET("/admin/blogs/:id", c.GetBlogByID)
	admin.GET("/admin/projects/:id", c.GetProjectByID)
	admin.GET("/admin/case-studies/:id", c.GetCaseStudyByID)
	admin.GET("/admin/technologies/:id", c.GetTechnologyByID)
	admin.GET("/admin/gallery/:id", c.GetGalleryByID)
	admin.GET("/admin/our-story/:id", c.GetOurStoryByID)
	admin.GET("/admin/success-stories/:id", c.GetSuccessStoryByID)
	admin.GET("/admin/stats", c.Stats)
}
