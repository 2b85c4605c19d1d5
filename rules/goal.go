package rules

import "github.com/nstehr/shiny/model"

type GoalOption struct {
	model.Goal
	Selected bool `json:"selected"`
}

type ChallengeToggle struct {
	model.ChallengeOption
	Enabled bool `json:"enabled"`
}

// GoalView is the story-card step.
type GoalView struct {
	StoryIndex int               `json:"storyIndex"`
	Story      *model.StoryCard  `json:"story,omitempty"`
	PlayersOK  bool              `json:"playersOk"`
	Goals      []GoalOption      `json:"goals,omitempty"`
	Challenges []ChallengeToggle `json:"challenges,omitempty"`
	Blocks     []model.RuleBlock `json:"blocks,omitempty"`
}

// Goal shows the selected story with its goals and challenge toggles.
func Goal(in Input) GoalView {
	gs := in.State
	v := GoalView{StoryIndex: model.NoStory, PlayersOK: true}
	if in.Catalog == nil {
		return v
	}
	story, ok := in.Catalog.Story(gs.StoryIndex)
	if !ok {
		return v
	}
	v.StoryIndex = gs.StoryIndex
	v.Story = &story
	v.PlayersOK = story.AllowsPlayers(gs.PlayerCount)
	for _, g := range story.Goals {
		v.Goals = append(v.Goals, GoalOption{Goal: g, Selected: g.Title == gs.SelectedGoal})
	}
	for _, c := range story.ChallengeOptions {
		v.Challenges = append(v.Challenges, ChallengeToggle{ChallengeOption: c, Enabled: gs.Challenge(c.ID)})
	}
	if story.SetupDescription != "" {
		v.Blocks = append(v.Blocks, block(model.SourceStory, story.Title, model.Para(story.SetupDescription)))
	}
	if !v.PlayersOK {
		v.Blocks = append(v.Blocks, block(model.SourceWarning, "Player Count",
			model.Para(story.Title+" is not designed for this many captains.")))
	}
	v.Blocks = append(v.Blocks, SpecialRules(in.Rules, model.CategoryGoal)...)
	return v
}
