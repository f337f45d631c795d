package content

import "time"

var seedDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func seedSectionVersion(title string) []SectionVersion {
	return []SectionVersion{{
		VersionID: 1,
		Title:     title,
		EditedBy:  1,
		EditDate:  seedDate,
	}}
}

func seedCard(id, category int, title, description, detailedDescription string) *Card {
	return &Card{
		ID:     id,
		ImgSrc: "https://placehold.co/100x100.png?text=" + GenerateSlug(title),
		Slug:   GenerateSlug(title),
		Versions: []CardVersion{{
			VersionID:           1,
			Title:               title,
			Description:         description,
			DetailedDescription: detailedDescription,
			Category:            category,
			EditedBy:            1,
			EditDate:            seedDate,
			Changes:             []string{"Initial creation"},
		}},
	}
}

// SeedRepository builds the help-center launch content: the category
// tree and the articles shown to players on day one.
func SeedRepository() *MemoryRepository {
	repo := NewRepository()

	titles := map[int]string{
		1:  "Server Rules",
		2:  "VIP Infractions",
		3:  "Staff Guidelines",
		4:  "Posting Guidelines",
		5:  "Admin Panel Guidelines",
		6:  "Forum and Subscriptions",
		7:  "Cheating Policy",
		8:  "Advanced Rules Menu",
		9:  "Infractions and Stats",
		10: "Server Commands",
	}
	sections := make(map[int]*Section, len(titles))
	for id, title := range titles {
		sections[id] = &Section{ID: id, Versions: seedSectionVersion(title)}
	}

	cards := []*Card{
		seedCard(1, 1, "General Conduct",
			"Because chaos is only fun in moderation.",
			"These are the current rules shown to players in-game using the command 'sm_rules' in console or !rules in chat.\n\n**No Spamming:** No excessive use of voice or text chat. No ear spam. No sound clips. No voice activation.\n**No interrupting:** Do not interrupt players while they are rapping. No adlibs.\n**No disruptive behavior:** Do not threaten or attack other players or IG staff. Don't be toxic.\n**No discrimination:** Do not attack or target anyone for their ethnicity, religion, sexual preference, or gender.\n**No doxing:** Attempting to discover or provide the personal information of another player will result in a permanent ban.\n**No advertising:** Don't drop your Soundcloud, Twitch, YouTube, Instagram, etc. here."),
		seedCard(2, 1, "Extended Mute or Ban",
			"For those who really like to push the boundaries.",
			"# Severe Disruption\nSevere server disruption; these infractions will result in an extended mute or a ban.\n- Ban evasion\n- Repeated infractions after a mute\n- Threats toward players or staff"),
		seedCard(3, 1, "Minimum 30 Minute Mute",
			"When you need a little quiet time to reflect.",
			"# General Disruption\nGeneral server disruption; these infractions will result in a minimum 30 minute mute.\n1. Mic spam\n2. Interrupting rappers\n3. Excessive arguing"),
		seedCard(4, 1, "Rapping and DJing Rules",
			"Because even mics need a break sometimes.",
			"Everyone is welcome to rap or play beats, with a few ground rules.\n\n**Respect the rotation:** Wait your turn on the mic.\n``sm_djlist`` shows the current DJ queue."),
		seedCard(5, 2, "VIP Infractions",
			"Some people just want to watch the world burn... but not here.",
			"Abuse of VIP Perks: Examples of abuse include ^^repeated^^ misuse of reserved slots and VIP-only commands."),
		seedCard(6, 3, "Imperfect Gamers Staff Guide Redux (2017)",
			"A gentle reminder on how not to become a digital tyrant.",
			"Over the past few years, the ban process on Imperfect Gamers has been adjusted. Start with warnings, escalate only when needed."),
		seedCard(7, 3, "Ban Appeals",
			"Because everyone deserves a second chance... or do they?",
			"Appeals: Every mod is required to participate in the ban appeal discussion thread before a verdict is posted."),
		seedCard(8, 4, "Posting Guidelines",
			"Spreading your digital wings without crashing into the window.",
			"Anybody with DJ or Rapper status is allowed to create one post per release in the promotion forum."),
		seedCard(9, 5, "Admin Panel Guide",
			"Wielding your digital power responsibly... or just recklessly enough.",
			"Here's a rundown of basic admin panel usage for new staff.\n```bash\nsm_admin\n```"),
		seedCard(10, 10, "General Commands",
			"For when you need to do something but don't know how to do it manually.",
			"[sm_avg, sm_rules, sm_timeleft, sm_tier]\nsm_avg: Display the average time of the current map."),
	}

	for _, card := range cards {
		section := sections[card.Latest().Category]
		section.Cards = append(section.Cards, card)
	}
	for _, section := range sections {
		repo.loadSection(section)
	}

	return repo
}
