package model

import "fmt"

// Brand assets and contact information for the WSU Graduate School. Edit
// these to rebrand the seed documents.
const (
	DefaultBannerURL = "https://futurecoug.wsu.edu/www/images/FF_header.png"
	DefaultBannerAlt = "WSU Graduate School"

	OrgName     = "WSU Graduate School"
	OrgAddress1 = "French Administration Building 324"
	OrgAddress2 = "Pullman, WA 99164"
	OrgPhone    = "509-335-6424"
	OrgEmail    = "gradschool@wsu.edu"
	OrgWebsite  = "https://gradschool.wsu.edu"
)

// Per-template masthead copy.
const (
	FFTitle     = "Friday Focus Newsletter"
	FFTagline   = "A semimonthly newsletter for graduate students"
	FFPreheader = "Your biweekly update from the WSU Graduate School"
	FFSubmitURL = "https://gradschool.wsu.edu/request-for-ff-promotion/"

	BriefingTitle            = "Graduate School Briefing"
	BriefingTagline          = "Semimonthly updates for graduate program faculty and staff"
	BriefingPreheader        = "Updates from the Graduate School"
	BriefingSubmitURL        = "https://gradschool.wsu.edu/listserv/"
	BriefingJiraURL          = "https://jira.esg.wsu.edu/servicedesk/customer/portal/121/group/323"
	BriefingKnowledgeBaseURL = "https://confluence.esg.wsu.edu/display/GRADSCHOOL"

	LetterTitle     = "Graduate School Slate Campaign"
	LetterTagline   = "A message from the Graduate School"
	LetterPreheader = "Important updates from the WSU Graduate School"
)

// DefaultSocialLinks returns the three stock footer social entries.
func DefaultSocialLinks() []SocialLink {
	return []SocialLink{
		{
			Platform: "Instagram",
			URL:      "https://www.instagram.com/gradschoolwsu/",
			Icon:     "https://futurecoug.wsu.edu/www/images/insta%20icon%20.png",
			Alt:      "Instagram",
		},
		{
			Platform: "LinkedIn",
			URL:      "https://www.linkedin.com/school/washington-state-university-graduate-school/",
			Icon:     "https://futurecoug.wsu.edu/www/images/Lin%20icon.png",
			Alt:      "LinkedIn",
		},
		{
			Platform: "Facebook",
			URL:      "https://www.facebook.com/WsuGraduateSchool/",
			Icon:     "https://futurecoug.wsu.edu/www/images/facebook%20icon.png",
			Alt:      "Facebook",
		},
	}
}

func defaultSectionLayout() SectionLayout {
	return SectionLayout{
		PaddingTop:       18,
		PaddingBottom:    28,
		BackgroundColor:  "",
		BorderRadius:     0,
		DividerEnabled:   Bool(true),
		DividerThickness: 2,
		DividerColor:     "#e0e0e0",
		DividerSpacing:   24,
		TitleAlign:       AlignLeft,
	}
}

func defaultSettings() Settings {
	return Settings{
		ContainerWidth:     DefaultContainerWidth,
		SectionSpacing:     24,
		ShowSectionBorders: Bool(true),
		PaddingText:        Pad(20, 20, 20, 20),
		PaddingImage:       Pad(20, 15, 20, 0),
		Typography: Typography{
			FontFamily:     "Arial, Helvetica, sans-serif",
			H2Size:         22,
			H2LineHeight:   1.3,
			H3Size:         18,
			H3LineHeight:   1.3,
			BodySize:       16,
			BodyLineHeight: 1.6,
			MetaSize:       15,
			MetaLineHeight: 1.7,
		},
		Colors: Colors{
			Primary:   "#A60F2D",
			TextDark:  "#2A3033",
			TextBody:  "#333333",
			TextMuted: "#5E6A71",
		},
	}
}

func defaultFooter() Footer {
	return Footer{
		AddressLines:       []string{OrgName, OrgAddress1, OrgAddress2},
		Social:             DefaultSocialLinks(),
		BackgroundColor:    "#FFFFFF",
		TextColor:          "#000000",
		LinkColor:          "#ffffff",
		PaddingTop:         Int(0),
		PaddingBottom:      Int(0),
		SocialMarginTop:    Int(0),
		SocialMarginBottom: Int(0),
	}
}

func defaultMasthead(title, tagline, preheader string) Masthead {
	return Masthead{
		BannerURL: DefaultBannerURL,
		BannerAlt: DefaultBannerAlt,
		Title:     title,
		Tagline:   tagline,
		Preheader: preheader,
		HeroShow:  Bool(true),
		HeroLink:  "",
	}
}

func defaultCTA(title, bodyHTML, label, url string) *CTACard {
	return &CTACard{
		Type:                    "cta",
		Title:                   title,
		ButtonBgColor:           "#A60F2D",
		ButtonTextColor:         "#ffffff",
		ButtonPaddingVertical:   12,
		ButtonPaddingHorizontal: 32,
		ButtonBorderWidth:       0,
		ButtonBorderColor:       "#8c0d25",
		ButtonBorderRadius:      10,
		ButtonAlignment:         AlignCenter,
		ButtonFullWidth:         false,
		TextAlignment:           AlignCenter,
		CardBase: CardBase{
			BodyHTML: bodyHTML,
			Links:    []Link{{Label: label, URL: url}},
		},
	}
}

// DefaultNewsletter returns the seed document for a template type.
func DefaultNewsletter(t TemplateType) (*Newsletter, error) {
	switch t {
	case TemplateFF:
		return DefaultFF(), nil
	case TemplateBriefing:
		return DefaultBriefing(), nil
	case TemplateLetter:
		return DefaultLetter(), nil
	}
	return nil, fmt.Errorf("unknown template type %q", t)
}

// DefaultFF is the Friday Focus seed: deadlines, events, resources and a
// submission CTA.
func DefaultFF() *Newsletter {
	return &Newsletter{
		Template: TemplateFF,
		Masthead: defaultMasthead(FFTitle, FFTagline, FFPreheader),
		Sections: []Section{
			{
				Key:    "deadlines",
				Title:  "Deadlines and Important Information",
				Layout: defaultSectionLayout(),
				Cards: Cards{
					&StandardCard{
						Type:     "standard",
						Title:    "Sample Announcement",
						Location: "Building / Room",
						CardBase: CardBase{
							BodyHTML:        "<p>Placeholder body copy for a standard item.</p>",
							Links:           []Link{{Label: "Read more", URL: "#"}},
							SpacingBottom:   20,
							BackgroundColor: "#f9f9f9",
						},
					},
				},
			},
			{
				Key:    "events",
				Title:  "Upcoming Events",
				Layout: defaultSectionLayout(),
				Cards: Cards{
					&EventCard{
						Type:     "event",
						Title:    "Sample Event Title",
						Location: "Pullman Campus",
						Date:     "Friday, October 10, 2025",
						Time:     "2:00 PM – 4:00 PM",
						CardBase: CardBase{
							BodyHTML:        "<p>Join us for an exciting event designed to help graduate students connect and learn.</p>",
							Links:           []Link{{Label: "Learn more", URL: "#"}},
							SpacingBottom:   20,
							BackgroundColor: "#f9f9f9",
						},
					},
				},
			},
			{
				Key:    "resources",
				Title:  "Resources",
				Layout: defaultSectionLayout(),
				Cards: Cards{
					&ResourceCard{
						Type:     "resource",
						Title:    "Health & Counseling Resources",
						ShowIcon: true,
						IconURL:  "https://futurecoug.wsu.edu/www/images/health_counseling.png",
						IconAlt:  "Health and Counseling Services icon",
						IconSize: 80,
						CardBase: CardBase{
							BodyHTML:      "<p>Support for emotional health, addiction, and medical needs is available through Cougar Health Services and Counseling & Psychological Services (CAPS).</p>",
							Links:         []Link{{Label: "Read more", URL: "https://handbook.wsu.edu/communitystandards/student-resources/campus-resources-and-support/"}},
							SpacingBottom: 20,
						},
					},
					&ResourceCard{
						Type:     "resource",
						Title:    "Basic Needs Benefit Navigator",
						ShowIcon: true,
						IconURL:  "https://futurecoug.wsu.edu/www/images/we_can_help_ff.png",
						IconAlt:  "Basic Needs icon",
						IconSize: 80,
						CardBase: CardBase{
							BodyHTML:      "<p>A university resource to help students navigate help with childcare, financial aid, food security, housing, utility support, health resources, and more.</p>",
							Links:         []Link{{Label: "Read more", URL: "https://deanofstudents.wsu.edu/student-resources"}},
							SpacingBottom: 20,
						},
					},
					&ResourceCard{
						Type:     "resource",
						Title:    "Explore Your Interests / Self-Assessment",
						ShowIcon: true,
						IconURL:  "https://futurecoug.wsu.edu/www/images/career-coach-2.png",
						IconAlt:  "Career Services icon",
						IconSize: 80,
						CardBase: CardBase{
							BodyHTML:      "<p>The Academic Success and Career Center offers self-assessments to help you find a career path that fits your interests.</p>",
							Links:         []Link{{Label: "Read more", URL: "https://ascc.wsu.edu/channels/explore-your-interests-self-assessment/"}},
							SpacingBottom: 20,
						},
					},
				},
			},
			{
				Key:    "submit_request",
				Title:  "",
				Layout: defaultSectionLayout(),
				Cards: Cards{
					defaultCTA(
						"Want to advertise in Friday Focus?",
						"<p>Submit your events, announcements, and opportunities for the next newsletter.</p>",
						"Please use this form", FFSubmitURL,
					),
				},
			},
		},
		Footer:   defaultFooter(),
		Settings: defaultSettings(),
	}
}

// DefaultBriefing is the faculty/staff briefing seed. It includes a closures
// section keyed "closures".
func DefaultBriefing() *Newsletter {
	return &Newsletter{
		Template: TemplateBriefing,
		Masthead: defaultMasthead(BriefingTitle, BriefingTagline, BriefingPreheader),
		Sections: []Section{
			{
				Key:    "updates",
				Title:  "Updates from the Graduate School",
				Layout: defaultSectionLayout(),
				Cards: Cards{
					&StandardCard{
						Type:  "standard",
						Title: "Sample Update",
						CardBase: CardBase{
							BodyHTML:      "<p>Plain text summary of an update.</p>",
							Links:         []Link{},
							SpacingBottom: 20,
						},
					},
				},
			},
			{
				Key:    "fiscal",
				Title:  "Fiscal Processor Updates",
				Layout: defaultSectionLayout(),
				Cards: Cards{
					&StandardCard{
						Type:  "standard",
						Title: "Sample Fiscal Note",
						CardBase: CardBase{
							BodyHTML:      "<p>Operational information that may impact fiscal processors.</p>",
							Links:         []Link{},
							SpacingBottom: 20,
						},
					},
				},
			},
			{
				Key:    ClosuresKey,
				Title:  "Graduate School Closures",
				Layout: defaultSectionLayout(),
				Closures: []Closure{
					{Date: "Jan 1", Reason: "Office closed for New Year's Day"},
				},
			},
			{
				Key:    "submit_request",
				Title:  "",
				Layout: defaultSectionLayout(),
				Cards: Cards{
					defaultCTA(
						"Submit Your Post",
						`<p>Do you have an update or announcement to share? We encourage submissions from all graduate programs. Submit your post here. You can also access <a href="https://gradschool.wsu.edu/faculty-and-staff-updates/">current and archived updates</a>.</p>`,
						"Submit your post", BriefingSubmitURL,
					),
				},
			},
			{
				Key:    "assistance",
				Title:  "Need Assistance?",
				Layout: defaultSectionLayout(),
				Cards: Cards{
					&StandardCard{
						Type:  "standard",
						Title: "Contact Options",
						CardBase: CardBase{
							BodyHTML: "<p>Submit a ticket via our Jira service desk, access resources in our Knowledge Base, email " +
								OrgEmail + ", or call " + OrgPhone + ".</p>",
							Links: []Link{
								{Label: "Service Desk", URL: BriefingJiraURL},
								{Label: "Knowledge Base", URL: BriefingKnowledgeBaseURL},
							},
							SpacingBottom: 20,
						},
					},
				},
			},
		},
		Footer:   defaultFooter(),
		Settings: defaultSettings(),
	}
}

// DefaultLetter is the Slate campaign seed: one letter card signed by the
// dean.
func DefaultLetter() *Newsletter {
	return &Newsletter{
		Template: TemplateLetter,
		Masthead: defaultMasthead(LetterTitle, LetterTagline, LetterPreheader),
		Sections: []Section{
			{
				Key:    "letter_content",
				Title:  "",
				Layout: defaultSectionLayout(),
				Cards: Cards{
					&LetterCard{
						Type:          "letter",
						Greeting:      "Dear Graduate Students,",
						Closing:       "Sincerely,",
						SignatureName: "Tammy D. Barry",
						SignatureLines: []string{
							"Dean of the Graduate School",
							"Vice Provost for Graduate Education",
						},
						SignatureImageURL:   "https://futurecoug.wsu.edu/www/images/8hG3FTHdpyUZZD4ILkWxI2Z8EjhQLChenToRkB20GeeDWkUQ6k_cxhHBNhmo8Sp1G26HVWE1AYun2gBz7B2XaQ.png",
						SignatureImageAlt:   "Tammy D. Barry signature",
						SignatureImageWidth: 220,
						CardBase: CardBase{
							BodyHTML:        "<p>This is a sample letter-style message. You can customize the greeting, body content, closing, and signature information.</p>",
							Links:           []Link{},
							SpacingBottom:   20,
							BackgroundColor: "#ffffff",
						},
					},
				},
			},
		},
		Footer:   defaultFooter(),
		Settings: defaultSettings(),
	}
}
