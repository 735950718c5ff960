package catalog

func p(loc, scale float64) Param { return Param{Loc: loc, Scale: scale} }

// beliefTable is the authored parameter table: one row per candidate
// belief, covering its perception of each behaviour, its relationship to
// every other belief, and its PRS row. Locations encode the domain
// semantics (e.g. caring about the environment perceives Walk/Cycle
// strongly positively and Drive strongly negatively).
var beliefTable = [NumBeliefs]BeliefSpec{
	{
		Name:       "I care about the environment",
		Perception: [NumBehaviours]Param{p(0.6, 0.1), p(0.7, 0.1), p(0.4, 0.1), p(-0.9, 0.1)},
		Relationship: [NumBeliefs]float64{
			0.0, -0.2, -0.2, 0.0, -0.1, -0.1, 0.0, -0.2, -0.1, 0.2,
			0.0, 0.0, 0.4, 0.4, 0.0, -0.1, 0.0, 0.0, 0.0, 0.0,
		},
		PRS: [NumBehaviours]Param{p(0.6, 0.1), p(0.7, 0.1), p(0.4, 0.1), p(-0.9, 0.1)},
	},
	{
		Name:       "I want to get to work quickly",
		Perception: [NumBehaviours]Param{p(-0.3, 0.1), p(0.0, 0.1), p(0.1, 0.1), p(0.5, 0.1)},
		Relationship: [NumBeliefs]float64{
			0.0, 0.0, 0.2, 0.0, 0.1, -0.1, 0.1, 0.3, 0.5, 0.0,
			0.1, 0.1, 0.0, 0.0, 0.0, 0.4, 0.0, 0.4, 0.2, 0.0,
		},
		PRS: [NumBehaviours]Param{p(-0.3, 0.1), p(0.0, 0.1), p(0.1, 0.1), p(0.5, 0.1)},
	},
	{
		Name:       "I care about the social importance of the car",
		Perception: [NumBehaviours]Param{p(0.0, 0.1), p(0.0, 0.1), p(-0.3, 0.1), p(0.8, 0.1)},
		Relationship: [NumBeliefs]float64{
			-0.3, 0.2, 0.0, 0.0, 0.2, 0.1, 0.0, 0.5, 0.3, 0.0,
			-0.1, -0.1, -0.1, -0.1, 0.0, 0.3, -0.5, 0.3, 0.3, -0.2,
		},
		PRS: [NumBehaviours]Param{p(0.0, 0.1), p(0.0, 0.1), p(-0.3, 0.1), p(0.8, 0.1)},
	},
	{
		Name:       "I want to keep fit",
		Perception: [NumBehaviours]Param{p(0.4, 0.1), p(0.8, 0.1), p(0.0, 0.1), p(-0.3, 0.1)},
		Relationship: [NumBeliefs]float64{
			0.0, -0.1, -0.1, 0.0, -0.5, -0.4, -0.3, -0.2, -0.1, -0.1,
			0.0, -0.2, 0.2, 0.2, -0.2, -0.4, 0.0, 0.0, 0.0, 0.0,
		},
		PRS: [NumBehaviours]Param{p(0.4, 0.1), p(0.8, 0.1), p(0.0, 0.1), p(-0.3, 0.1)},
	},
	{
		Name:       "I do not want to perform exercise on my commute",
		Perception: [NumBehaviours]Param{p(-0.3, 0.1), p(-0.6, 0.1), p(0.1, 0.05), p(0.1, 0.05)},
		Relationship: [NumBeliefs]float64{
			-0.1, 0.2, 0.1, -0.5, 0.0, 0.4, 0.3, 0.3, 0.3, 0.1,
			0.1, 0.3, -0.2, -0.2, 0.1, 0.5, 0.0, 0.3, 0.0, 0.0,
		},
		PRS: [NumBehaviours]Param{p(-0.3, 0.1), p(-0.6, 0.1), p(0.1, 0.05), p(0.1, 0.05)},
	},
	{
		Name:       "Cycling is hard work",
		Perception: [NumBehaviours]Param{p(0.0, 0.05), p(-0.8, 0.1), p(0.0, 0.05), p(0.0, 0.05)},
		Relationship: [NumBeliefs]float64{
			-0.2, 0.2, 0.2, -0.2, 0.2, 0.0, 0.1, 0.2, 0.3, 0.0,
			0.1, 0.2, -0.1, 0.0, 0.0, 0.5, 0.0, 0.2, 0.0, 0.0,
		},
		PRS: [NumBehaviours]Param{p(0.0, 0.05), p(-0.8, 0.1), p(0.0, 0.05), p(0.0, 0.05)},
	},
	{
		Name:       "I'm not fit enough to walk",
		Perception: [NumBehaviours]Param{p(-0.8, 0.1), p(-0.8, 0.1), p(0.1, 0.05), p(0.1, 0.05)},
		Relationship: [NumBeliefs]float64{
			0.0, 0.1, 0.1, 0.0, 0.5, 0.5, 0.0, 0.0, 0.2, 0.0,
			0.0, 0.0, 0.0, -0.1, -0.1, 0.2, 0.0, 0.1, 0.0, 0.0,
		},
		PRS: [NumBehaviours]Param{p(-0.8, 0.1), p(-0.8, 0.1), p(0.1, 0.05), p(0.1, 0.05)},
	},
	{
		Name:       "I don't think cycling is cool / fun",
		Perception: [NumBehaviours]Param{p(0.0, 0.05), p(-0.2, 0.1), p(0.0, 0.05), p(0.0, 0.05)},
		Relationship: [NumBeliefs]float64{
			-0.2, 0.2, 0.2, -0.1, 0.1, 0.5, 0.0, 0.0, 0.4, 0.3,
			0.3, 0.4, -0.5, 0.0, 0.0, 0.4, 0.0, 0.3, 0.0, 0.0,
		},
		PRS: [NumBehaviours]Param{p(0.0, 0.05), p(-0.2, 0.1), p(0.0, 0.05), p(0.0, 0.05)},
	},
	{
		Name:       "Car driving is more convenient",
		Perception: [NumBehaviours]Param{p(0.0, 0.05), p(0.0, 0.05), p(-0.1, 0.05), p(0.5, 0.1)},
		Relationship: [NumBeliefs]float64{
			-0.2, 0.4, 0.3, -0.1, 0.2, 0.2, 0.1, 0.2, 0.0, 0.0,
			0.1, 0.1, -0.2, -0.2, 0.1, 0.4, 0.0, 0.5, -0.3, -0.3,
		},
		PRS: [NumBehaviours]Param{p(0.0, 0.05), p(0.0, 0.05), p(-0.1, 0.05), p(0.5, 0.1)},
	},
	{
		Name:       "I'm scared of getting hit by a car",
		Perception: [NumBehaviours]Param{p(-0.2, 0.1), p(-0.7, 0.1), p(0.0, 0.05), p(0.0, 0.05)},
		Relationship: [NumBeliefs]float64{
			0.0, 0.1, 0.0, 0.0, 0.1, 0.0, 0.0, 0.1, 0.3, 0.0,
			0.1, 0.6, -0.2, -0.2, 0.6, 0.0, 0.0, 0.0, 0.0, 0.0,
		},
		PRS: [NumBehaviours]Param{p(-0.2, 0.1), p(-0.7, 0.1), p(0.0, 0.05), p(0.0, 0.05)},
	},
	{
		Name:       "My bike might get stolen",
		Perception: [NumBehaviours]Param{p(0.0, 0.05), p(-0.5, 0.1), p(0.0, 0.05), p(0.0, 0.05)},
		Relationship: [NumBeliefs]float64{
			0.0, 0.1, 0.1, 0.0, 0.1, 0.0, 0.0, 0.1, 0.2, 0.0,
			0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
		},
		PRS: [NumBehaviours]Param{p(0.0, 0.05), p(-0.5, 0.1), p(0.0, 0.05), p(0.0, 0.05)},
	},
	{
		Name:       "Cycling is dangerous",
		Perception: [NumBehaviours]Param{p(0.0, 0.05), p(-0.5, 0.1), p(0.2, 0.1), p(0.2, 0.1)},
		Relationship: [NumBeliefs]float64{
			0.0, 0.0, 0.1, 0.0, 0.0, 0.0, 0.0, 0.3, 0.1, 0.6,
			0.0, 0.0, -0.3, 0.0, 0.1, 0.0, 0.0, 0.0, 0.0, 0.0,
		},
		PRS: [NumBehaviours]Param{p(0.0, 0.05), p(-0.5, 0.1), p(0.2, 0.1), p(0.2, 0.1)},
	},
	{
		Name:       "I get to see the environment when I cycle",
		Perception: [NumBehaviours]Param{p(0.2, 0.1), p(0.7, 0.1), p(-0.1, 0.1), p(-0.1, 0.1)},
		Relationship: [NumBeliefs]float64{
			0.5, -0.2, -0.3, 0.1, -0.1, -0.5, 0.0, -0.5, -0.1, -0.2,
			-0.1, -0.2, 0.0, 0.4, -0.1, -0.1, 0.0, -0.1, 0.0, 0.0,
		},
		PRS: [NumBehaviours]Param{p(0.2, 0.1), p(0.7, 0.1), p(-0.1, 0.1), p(-0.1, 0.1)},
	},
	{
		Name:       "Walking allows me to experience the environment",
		Perception: [NumBehaviours]Param{p(0.7, 0.1), p(0.2, 0.1), p(-0.1, 0.1), p(-0.1, 0.1)},
		Relationship: [NumBeliefs]float64{
			0.5, -0.3, -0.3, 0.1, -0.1, -0.1, -0.3, -0.1, -0.2, -0.2,
			0.0, 0.0, 0.4, 0.0, -0.5, 0.0, 0.0, 0.0, 0.0, 0.0,
		},
		PRS: [NumBehaviours]Param{p(0.7, 0.1), p(0.2, 0.1), p(-0.1, 0.1), p(-0.1, 0.1)},
	},
	{
		Name:       "I feel unsafe walking",
		Perception: [NumBehaviours]Param{p(-0.5, 0.1), p(-0.1, 0.1), p(0.1, 0.1), p(0.1, 0.1)},
		Relationship: [NumBeliefs]float64{
			0.0, 0.1, 0.0, 0.0, 0.2, 0.0, 0.0, 0.3, 0.3, 0.6,
			0.0, 0.5, -0.2, -0.4, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
		},
		PRS: [NumBehaviours]Param{p(-0.5, 0.1), p(-0.1, 0.1), p(0.1, 0.1), p(0.1, 0.1)},
	},
	{
		Name:       "Driving / PT allows me to get to work not sweaty",
		Perception: [NumBehaviours]Param{p(-0.1, 0.1), p(-0.5, 0.1), p(0.3, 0.1), p(0.3, 0.1)},
		Relationship: [NumBeliefs]float64{
			-0.3, 0.4, 0.4, -0.3, 0.6, 0.4, 0.2, 0.4, 0.5, 0.0,
			0.0, 0.0, -0.3, -0.3, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
		},
		PRS: [NumBehaviours]Param{p(-0.1, 0.1), p(-0.5, 0.1), p(0.3, 0.1), p(0.3, 0.1)},
	},
	{
		Name:       "The traffic is too bad to drive",
		Perception: [NumBehaviours]Param{p(0.4, 0.1), p(0.4, 0.1), p(-0.3, 0.1), p(-0.9, 0.1)},
		Relationship: [NumBeliefs]float64{
			0.0, 0.3, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
			0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.1,
		},
		PRS: [NumBehaviours]Param{p(0.4, 0.1), p(0.4, 0.1), p(-0.3, 0.1), p(-0.9, 0.1)},
	},
	{
		Name:       "Driving lets me get to work on time",
		Perception: [NumBehaviours]Param{p(0.0, 0.05), p(0.0, 0.05), p(-0.1, 0.1), p(0.6, 0.1)},
		Relationship: [NumBeliefs]float64{
			-0.3, 0.6, 0.3, -0.2, 0.4, 0.3, 0.1, 0.3, 0.6, 0.0,
			0.1, 0.1, -0.3, -0.3, 0.0, 0.4, -0.5, 0.0, 0.4, -0.2,
		},
		PRS: [NumBehaviours]Param{p(0.0, 0.05), p(0.0, 0.05), p(-0.1, 0.1), p(0.6, 0.1)},
	},
	{
		Name:       "PT is unreliable",
		Perception: [NumBehaviours]Param{p(0.3, 0.1), p(0.3, 0.1), p(-0.9, 0.1), p(0.4, 0.1)},
		Relationship: [NumBeliefs]float64{
			-0.1, 0.6, 0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.4, 0.0,
			0.0, 0.0, 0.1, 0.1, 0.0, 0.0, 0.1, 0.4, 0.0, 0.0,
		},
		PRS: [NumBehaviours]Param{p(0.3, 0.1), p(0.3, 0.1), p(-0.9, 0.1), p(0.4, 0.1)},
	},
	{
		Name:       "My car is bad",
		Perception: [NumBehaviours]Param{p(0.2, 0.1), p(0.2, 0.1), p(0.2, 0.1), p(-0.3, 0.1)},
		Relationship: [NumBeliefs]float64{
			0.0, 0.2, 0.2, 0.0, 0.0, 0.0, 0.0, 0.0, -0.1, 0.0,
			0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
		},
		PRS: [NumBehaviours]Param{p(0.2, 0.1), p(0.2, 0.1), p(0.2, 0.1), p(-0.3, 0.1)},
	},
}
