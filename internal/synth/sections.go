package synth

import (
	"github.com/asif-cs/portfolio/internal/content"
	"github.com/asif-cs/portfolio/internal/icons"
	"github.com/asif-cs/portfolio/internal/view"
)

// section renders one section. The second result is false when the content
// variant has no renderer and only the title was emitted.
func (s *synthesizer) section(sec content.Section) (*view.Node, bool) {
	node := view.El("section",
		view.TextEl("h2", sec.Title).WithClass("section-title"),
	).WithID(sec.ID)

	var body *view.Node
	switch c := sec.Content.(type) {
	case content.BioContent:
		body = s.bio(sec.ID, c)
	case content.TimelineContent:
		body = s.timeline(c)
	case content.EducationContent:
		body = s.education(c)
	case content.ProjectsContent:
		body = s.projects(sec.ID, c)
	case content.SkillsContent:
		body = s.skills(c)
	case content.ContactContent:
		body = s.contact(sec.ID, c)
	case content.UnknownContent:
		// Title only.
	}
	if body == nil {
		return node, false
	}
	node.Append(body)
	return node, true
}

func (s *synthesizer) bio(id string, c content.BioContent) *view.Node {
	card := view.El("div",
		view.El("div").WithClass("bio-text").WithRaw(s.paragraphs(c.Text)),
	).WithClass("card bio-card")
	if len(c.Media) > 0 {
		card.WithClass("has-media")
		card.Append(s.mediaContainer(id, c.Media))
	}
	return card
}

func (s *synthesizer) timeline(c content.TimelineContent) *view.Node {
	card := view.El("div").WithClass("card")
	for _, e := range c.Entries {
		card.Append(view.El("div",
			view.TextEl("h3", e.Role),
			view.TextEl("div", e.Company).WithClass("detail-subtitle"),
			view.TextEl("div", e.Period).WithClass("period"),
			s.notes(e.Responsibilities),
		).WithClass("timeline-item"))
	}
	return card
}

func (s *synthesizer) education(c content.EducationContent) *view.Node {
	card := view.El("div").WithClass("card")
	for _, e := range c.Items {
		card.Append(view.El("div",
			view.TextEl("h3", e.Degree),
			view.TextEl("div", e.University+" | "+e.Year).WithClass("detail-subtitle"),
			s.notes(e.Notes),
		).WithClass("education-item"))
	}
	return card
}

func (s *synthesizer) notes(items []string) *view.Node {
	ul := view.El("ul").WithClass("detail-notes")
	for _, it := range items {
		ul.Append(view.El("li").WithRaw(s.inline(it)))
	}
	return ul
}

func (s *synthesizer) projects(id string, c content.ProjectsContent) *view.Node {
	block := ProjectsBlock{SectionID: id, Tags: c.Tags()}

	block.All = view.TextEl("button", "All").WithID(id + "-filter-all").WithClass("filter-btn active")
	block.FilterToggle = view.El("button",
		view.TextEl("span", "Filter"),
		svgStroke(icons.Filter),
	).WithID(id+"-filter-toggle").WithClass("filter-btn").WithAttr("aria-expanded", "false")

	block.TagsWrapper = view.El("div").WithID(id + "-filter-tags").WithClass("filter-tags-wrapper")
	for i, tag := range block.Tags {
		btn := view.TextEl("button", tag).
			WithID(id+"-tag-"+itoa(i)).
			WithClass("filter-btn").
			WithAttr("data-tag", tag)
		block.TagButtons = append(block.TagButtons, btn)
		block.TagsWrapper.Append(btn)
	}

	block.Grid = view.El("div").WithID(id + "-grid").WithClass("projects-grid")
	for i, p := range c.Projects {
		card := s.projectCard(id+"-card-"+itoa(i), p)
		block.Grid.Append(card)
		block.Cards = append(block.Cards, CardRef{Node: card, Tags: p.Tags})
	}

	s.page.Projects = append(s.page.Projects, block)
	return view.El("div",
		view.El("div",
			view.El("div", block.All, block.FilterToggle).WithClass("filter-controls"),
			block.TagsWrapper,
		).WithClass("project-filters"),
		block.Grid,
	)
}

func (s *synthesizer) projectCard(id string, p content.Project) *view.Node {
	card := view.El("div").WithID(id).WithClass("card project-card")
	if len(p.Media) > 0 {
		card.WithClass("has-media")
	} else {
		card.WithClass("no-media")
	}

	rm := ReadMoreBlock{Text: plainText(p.Description)}
	rm.Description = view.El("div").WithID(id + "-desc").WithClass("project-description").
		WithRaw(s.paragraphs(p.Description))
	rm.Button = view.TextEl("button", "See More").WithID(id + "-more").WithClass("read-more-btn").WithHidden(true)
	rm.Wrapper = view.El("div", rm.Description, rm.Button).WithClass("project-description-wrapper")
	s.page.ReadMore = append(s.page.ReadMore, rm)

	tags := view.El("div").WithClass("tags")
	for _, t := range p.Tags {
		tags.Append(view.TextEl("span", t).WithClass("tech-tag"))
	}
	links := view.El("div").WithClass("project-links")
	for _, l := range p.Links {
		links.Append(view.TextEl("a", l.Name).WithClass("link-underline").
			WithAttr("href", l.URL).
			WithAttr("target", "_blank").
			WithAttr("rel", "noopener noreferrer"))
	}

	card.Append(view.El("div",
		view.TextEl("h3", p.Title),
		rm.Wrapper,
		view.El("div", tags, links).WithClass("project-meta"),
	).WithClass("project-details"))

	if len(p.Media) > 0 {
		card.Append(s.mediaContainer(id, p.Media))
	}
	return card
}

func (s *synthesizer) skills(c content.SkillsContent) *view.Node {
	grid := view.El("div").WithClass("skills-grid")
	for _, cat := range c.Categories {
		chips := view.El("div").WithClass("skill-tags")
		for _, sk := range cat.Skills {
			chips.Append(view.TextEl("span", sk).WithClass("skill-tag"))
		}
		grid.Append(view.El("div", view.TextEl("h3", cat.Name), chips).WithClass("skill-category"))
	}
	return view.El("div", grid).WithClass("card")
}

func (s *synthesizer) contact(id string, c content.ContactContent) *view.Node {
	info := s.g.PersonalInfo
	cb := &ContactBlock{Email: info.Email}
	cb.Timestamp = view.TextEl("span", ContactTimestamp(s.opts.Now)).
		WithID(id + "-timestamp").WithClass("message-timestamp")
	cb.Message = view.El("textarea").WithID(id + "-message").WithClass("form-textarea").
		WithAttr("name", "message").
		WithAttr("placeholder", "Your message...").
		WithAttr("required", "")
	cb.Form = view.El("form",
		cb.Message,
		view.El("button", svgFill(icons.Send)).WithClass("btn-icon contact-button").
			WithAttr("type", "submit").WithAttr("aria-label", "Send Email"),
	).WithID(id + "-form").WithClass("contact-form").WithAttr("data-email", info.Email)
	s.page.Contacts = append(s.page.Contacts, cb)

	return view.El("div",
		view.El("div",
			view.El("img").WithClass("chat-avatar").
				WithAttr("src", info.ImageURL).
				WithAttr("alt", info.Name).
				WithAttr("data-fallback", avatarPlaceholder),
			view.TextEl("span", info.Name).WithClass("chat-name"),
		).WithClass("chat-header"),
		view.El("div",
			view.El("div",
				view.El("div",
					view.El("span"), view.El("span"), view.El("span"),
				).WithClass("typing-indicator"),
				view.El("p").WithClass("contact-intro").WithRaw(s.inline(c.Intro)),
			).WithClass("message-container"),
			cb.Timestamp,
		).WithClass("chat-body"),
		cb.Form,
	).WithClass("card chat-window")
}
