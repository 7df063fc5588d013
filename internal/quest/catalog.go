package quest

// Module display names, in map order.
const (
	ModuleAttendance  = "Attendance & Hours"
	ModulePeopleOrg   = "People & Org"
	ModulePerformance = "Performance Review"
	ModuleRelations   = "Employee Relations"
)

// Catalog returns the full task list in quest-map order. IDs are
// contiguous from 1; each call returns a fresh slice.
func Catalog() []Task {
	return []Task{
		// Module 1: Attendance & Hours
		{
			ID:          1,
			Module:      ModuleAttendance,
			Kind:        KindQuiz,
			Title:       "⭐ Warm-up: Attendance Concepts Quick Quiz",
			Scenario:    "[Start-of-month warm-up] Before diving into a mountain of punch-clock data, confirm your grasp of Excel date and time functions.",
			Desc:        "Manager: \"Let me quiz you on the basics before you touch the real sheets.\"",
			XPReward:    15,
			BadgeReward: "Time Sense Master",
			BadgeIcon:   IconStar,
			Requirements: []string{
				"Answer the correct use of NETWORKDAYS",
				"Recognize the logic of the TIME function",
			},
			SkillNodes: []SkillNode{
				{Name: "Concept Check", Formula: "Quiz Mode", Context: "Fundamentals check", VideoTitle: "Excel date & time roundup"},
			},
			Practices: []Practice{
				{
					ID:       "p1_1",
					Question: "I want to count the working days between 2023/10/1 and 2023/10/31, excluding weekends. Which formula should I use?",
					Options: []string{
						"=DAYS(2023/10/31, 2023/10/1)",
						"=NETWORKDAYS(\"2023/10/1\", \"2023/10/31\")",
						"=2023/10/31 - 2023/10/1",
					},
					Answer:      1,
					Explanation: "NETWORKDAYS counts the working days between two dates and automatically skips Saturdays and Sundays. DAYS only returns the calendar-day difference.",
				},
				{
					ID:       "p1_2",
					Question: "To test whether the time in A1 is later than 9:00, which form is safest?",
					Options: []string{
						"=IF(A1 > \"9:00\", ...)",
						"=IF(A1 > 9, ...)",
						"=IF(A1 > TIME(9,0,0), ...)",
					},
					Answer:      2,
					Explanation: "Excel stores times as fractional numbers. TIME(9,0,0) produces a proper time serial for the comparison and avoids text-format mismatches.",
				},
			},
		},
		{
			ID:          2,
			Module:      ModuleAttendance,
			Title:       "L1. Flag Attendance Anomalies",
			Scenario:    "[Punch-clock details] This round is finer-grained: beyond lateness, catch early leaves and missing punches. Flag every abnormal state with compound conditions.",
			Desc:        "Attendance clerk: \"Lateness alone isn't enough — I want every anomaly on one sheet.\"",
			XPReward:    15,
			BadgeReward: "Early Bird Warden",
			BadgeIcon:   IconShield,
			DownloadFile: "M01_Task_01_Lateness.xlsx",
			TimeLimit:    600,
			Requirements: []string{
				"Use OR to flag lateness or early leave",
				"Handle blank punch records",
			},
			SkillNodes: []SkillNode{
				{Name: "Anomaly Handling", Formula: "=IF(OR(A2=\"\", B2>...), \"Abnormal\", \"\")", Context: "Multi-condition anomaly checks", VideoTitle: "Logic functions in practice"},
			},
		},
		{
			ID:          3,
			Module:      ModuleAttendance,
			Title:       "L2. Weekday vs. Holiday Overtime Hours",
			Scenario:    "[Overtime pay] Company policy: weekday overtime counts only past the first 2 hours, holiday overtime counts in full. Compute each person's payable overtime from the punch records and date type.",
			Desc:        "Comp & benefits: \"Weekdays and holidays are calculated differently — don't mix them up!\"",
			XPReward:    20,
			BadgeReward: "Actuary",
			DownloadFile: "M01_Task_02_Overtime.xlsx",
			TimeLimit:    720,
			Requirements: []string{
				"Use WEEKDAY to identify the day of week",
				"Use IF to branch weekday/holiday logic",
				"Compute the hour difference",
			},
			SkillNodes: []SkillNode{
				{Name: "Weekday Detection", Formula: "=WEEKDAY(Serial_number, 2)", Context: "Weekend or weekday", VideoTitle: "The WEEKDAY function"},
			},
		},
		{
			ID:          4,
			Module:      ModuleAttendance,
			Title:       "L3. Remaining Annual Leave Balance",
			Scenario:    "[Leave management] A new hire asks how many days of leave they have left. Compute tenure from the hire date, look up the leave table (VLOOKUP), and subtract days taken.",
			Desc:        "HR admin: \"Everyone's tenure differs, so their allowance differs — automate the lookup.\"",
			XPReward:    25,
			BadgeReward: "Leave Keeper",
			DownloadFile: "M01_Task_03_Leave_Balance.xlsx",
			TimeLimit:    900,
			Requirements: []string{
				"Use DATEDIF to compute tenure",
				"Use VLOOKUP against the leave table",
				"Compute the remaining balance",
			},
			SkillNodes: []SkillNode{
				{Name: "Tenure Calculation", Formula: "=DATEDIF(Start, Today, \"Y\")", Context: "Full years of service", VideoTitle: "DATEDIF, the hidden function"},
			},
		},
		{
			ID:          5,
			Module:      ModuleAttendance,
			Title:       "L4. Absence Deduction Worksheet",
			Scenario:    "[Payroll prep] Personal and sick leave deduct at different rates. Build a worksheet that takes a leave type and hours and computes the deduction automatically.",
			Desc:        "Manager: \"Sick leave deducts half pay, personal leave full pay — don't swap them.\"",
			XPReward:    30,
			BadgeReward: "Payroll Precision",
			DownloadFile: "M01_Task_04_Deduction.xlsx",
			TimeLimit:    900,
			Requirements: []string{
				"Use IFS or nested IF for the deduction rate by leave type",
				"Combine with the daily wage to compute the amount",
				"Use ROUND to whole dollars",
			},
			SkillNodes: []SkillNode{
				{Name: "Multi-Branch Logic", Formula: "=IFS(Type=\"Sick\", 0.5, ...)", Context: "Several leave types", VideoTitle: "The IFS function"},
			},
		},
		{
			ID:          6,
			Module:      ModuleAttendance,
			Title:       "BOSS. Automated Attendance Exception Report",
			Scenario:    "[BOSS: month-end closing] Merge the whole month of punch records, auto-flag the four states — late, early leave, missing punch, absent — and produce the exception report.",
			Desc:        "CHRO: \"One sheet. Tell me who has a problem.\"",
			Boss:        true,
			XPReward:    50,
			BadgeReward: "Lord of Time",
			BadgeIcon:   IconSword,
			DownloadFile: "M01_Task_05_Boss_Report.xlsx",
			TimeLimit:    1800,
			Requirements: []string{
				"Integrate all the attendance logic",
				"Use compound OR/AND conditions",
				"Use conditional formatting for red-flag warnings",
			},
			SkillNodes: []SkillNode{
				{Name: "Compound Logic", Formula: "=IF(OR(A1, AND(B1, C1))...)", Context: "Complex state rules", VideoTitle: "Advanced logic functions"},
			},
		},

		// Module 2: People & Org
		{
			ID:          7,
			Module:      ModulePeopleOrg,
			Kind:        KindQuiz,
			Title:       "⭐ Warm-up: Org Data Concepts",
			Scenario:    "[Structure-analysis warm-up] Before the heavier workforce analytics, confirm your understanding of counting functions and date arithmetic.",
			Desc:        "CHRO: \"COUNTIF and DATEDIF are HR's left and right hands. Know them?\"",
			XPReward:    20,
			BadgeReward: "Org Architect",
			BadgeIcon:   IconStar,
			Requirements: []string{
				"Know how COUNTIF conditions work",
				"Understand the DATEDIF unit codes",
			},
			SkillNodes: []SkillNode{
				{Name: "Concept Check", Formula: "Quiz Mode", Context: "Function syntax check", VideoTitle: "Counting functions basics"},
			},
			Practices: []Practice{
				{
					ID:       "p2_1",
					Question: "To count how many people are in the Sales department, which formula is correct?",
					Options: []string{
						"=COUNT(dept range)",
						"=COUNTIF(dept range, \"Sales\")",
						"=SUMIF(dept range, \"Sales\")",
					},
					Answer:      1,
					Explanation: "COUNTIF(range, criteria) counts the cells matching a condition such as \"Sales\". COUNT only counts numbers, and SUMIF sums values.",
				},
				{
					ID:       "p2_2",
					Question: "In DATEDIF(hire date, today, \"Y\"), what does \"Y\" mean?",
					Options: []string{
						"Total days",
						"Total months",
						"Full years",
					},
					Answer:      2,
					Explanation: "\"Y\" stands for Year: the number of full years between the two dates. Use \"M\" for months.",
				},
			},
		},
		{
			ID:          8,
			Module:      ModulePeopleOrg,
			Title:       "L1. Headcount & Gender Stats",
			Scenario:    "[Equality report] The government requires the company's gender ratio. Quickly tally men and women company-wide and per department.",
			Desc:        "Legal: \"The report is due next week. Numbers, please.\"",
			XPReward:    15,
			BadgeReward: "Census Taker",
			DownloadFile: "M02_Task_01_Gender_Stats.xlsx",
			TimeLimit:    600,
			Requirements: []string{
				"Use COUNTIF for company-wide gender counts",
				"Use COUNTIFS for per-department counts",
			},
			SkillNodes: []SkillNode{
				{Name: "Multi-Criteria Counting", Formula: "=COUNTIFS(DeptRange, Dept, GenderRange, \"M\")", Context: "Per-department gender stats", VideoTitle: "COUNTIFS in practice"},
			},
		},
		{
			ID:          9,
			Module:      ModulePeopleOrg,
			Title:       "L2. Education Structure Analysis",
			Scenario:    "[Talent review] The company wants the graduate-degree ratio. Clean the education field and build a distribution table.",
			Desc:        "Recruiting manager: \"Is R&D really all master's degrees and up?\"",
			XPReward:    20,
			BadgeReward: "Academic Explorer",
			DownloadFile: "M02_Task_02_Education.xlsx",
			TimeLimit:    720,
			Requirements: []string{
				"Clean the education column (strip whitespace)",
				"Count each education level",
				"Compute the percentage share",
			},
			SkillNodes: []SkillNode{
				{Name: "Data Cleaning", Formula: "=TRIM()", Context: "Strip stray whitespace", VideoTitle: "Data cleaning basics"},
			},
		},
		{
			ID:          10,
			Module:      ModulePeopleOrg,
			Title:       "L3. Retirement Watchlist",
			Scenario:    "[Succession planning] Trickier than the warm-up: the statutory retirement test is 25 years of service OR age 65. List everyone meeting either condition.",
			Desc:        "CHRO: \"The rules got stricter — either condition qualifies, list them all.\"",
			XPReward:    25,
			BadgeReward: "Structure Analyst",
			DownloadFile: "M02_Task_03_Retirement.xlsx",
			TimeLimit:    900,
			Requirements: []string{
				"Compute tenure and age",
				"Use OR to test retirement eligibility",
			},
			SkillNodes: []SkillNode{
				{Name: "Retirement Test", Formula: "=OR(Age>=65, WorkYear>=25)", Context: "Multiple retirement rules", VideoTitle: "Logic tests, advanced"},
			},
		},
		{
			ID:          11,
			Module:      ModulePeopleOrg,
			Title:       "L4. Grade & Salary Band Distribution",
			Scenario:    "[Comp analysis] Classify every salary into bands 1-5 from the band table, and find anyone paid below their grade's floor.",
			Desc:        "Comp manager: \"Anyone under their band minimum? Find them.\"",
			XPReward:    30,
			BadgeReward: "Comp Gatekeeper",
			BadgeIcon:   IconShield,
			DownloadFile: "M02_Task_04_Salary_Band.xlsx",
			TimeLimit:    1200,
			Requirements: []string{
				"Use VLOOKUP (range match) to band salaries",
				"Flag out-of-band salaries",
			},
			SkillNodes: []SkillNode{
				{Name: "Range Lookup", Formula: "=VLOOKUP(Val, Table, Col, TRUE)", Context: "Bucketing values into ranges", VideoTitle: "VLOOKUP range matching"},
			},
		},
		{
			ID:          12,
			Module:      ModulePeopleOrg,
			Title:       "BOSS. Org Chart Data Source",
			Scenario:    "[BOSS: reorg] The company is restructuring and needs a fresh org chart. Pair employee IDs with manager IDs, then check for broken or circular reporting lines.",
			Desc:        "CEO: \"The new org chart's data source has to be right.\"",
			Boss:        true,
			XPReward:    50,
			BadgeReward: "Org Architect",
			BadgeIcon:   IconSword,
			DownloadFile: "M02_Task_05_Boss_OrgChart.xlsx",
			TimeLimit:    1800,
			Requirements: []string{
				"Use a VLOOKUP self-join to resolve manager names",
				"Check for invalid manager IDs",
			},
			SkillNodes: []SkillNode{
				{Name: "Self-Join", Formula: "VLOOKUP against the same table", Context: "Building the hierarchy", VideoTitle: "Advanced data relations"},
			},
		},

		// Module 3: Performance Review
		{
			ID:          13,
			Module:      ModulePerformance,
			Kind:        KindQuiz,
			Title:       "⭐ Warm-up: Charts & Review Logic",
			Scenario:    "[Chart warm-up] Before building the merit matrix, confirm your understanding of IF tests and basic chart types.",
			Desc:        "Performance manager: \"Get the fundamentals right and the charts draw themselves.\"",
			XPReward:    25,
			BadgeReward: "Performance Analyst",
			BadgeIcon:   IconStar,
			Requirements: []string{
				"Trace nested IF logic",
				"Choose the right chart type",
			},
			SkillNodes: []SkillNode{
				{Name: "Concept Check", Formula: "Quiz Mode", Context: "Logic and visualization", VideoTitle: "Excel charts, a primer"},
			},
			Practices: []Practice{
				{
					ID:       "p3_1",
					Question: "To show each department's share of total headcount, which chart fits best?",
					Options: []string{
						"Line chart",
						"Pie chart",
						"Scatter plot",
					},
					Answer:      1,
					Explanation: "A pie chart shows part-to-whole proportions. Line charts show trends; scatter plots show correlation.",
				},
				{
					ID:       "p3_2",
					Question: "Given =IF(A1>=80, \"Great\", IF(A1>=60, \"Fair\", \"Poor\")), what does A1 = 70 return?",
					Options: []string{
						"Great",
						"Fair",
						"Poor",
					},
					Answer:      1,
					Explanation: "A1>=80 (70>=80) is false, so the second IF runs; A1>=60 (70>=60) is true, so it returns \"Fair\".",
				},
			},
		},
		{
			ID:          14,
			Module:      ModulePerformance,
			Title:       "L1. Auto-Convert Performance Grades",
			Scenario:    "[Grading scheme] Five grades this time: S, A, B, C, D. Build a lookup table and convert 500 employees' scores to grades automatically.",
			Desc:        "Performance clerk: \"Sorting five grades by hand is torture — VLOOKUP it.\"",
			XPReward:    15,
			BadgeReward: "Rating Speedster",
			DownloadFile: "M03_Task_01_Rating.xlsx",
			TimeLimit:    600,
			Requirements: []string{
				"Use VLOOKUP (range match) to map scores to grades",
			},
			SkillNodes: []SkillNode{
				{Name: "Grade Conversion", Formula: "=VLOOKUP(Score, {0,\"D\";60,\"C\"...}, 2)", Context: "Scores to letter grades", VideoTitle: "Range-conversion tricks"},
			},
		},
		{
			ID:          15,
			Module:      ModulePerformance,
			Title:       "L2. Weighted Performance Scores",
			Scenario:    "[Composite score] Annual performance is KPI (70%) plus core competency (30%). Compute each employee's weighted total.",
			Desc:        "Performance manager: \"Weight it properly — no straight averages.\"",
			XPReward:    20,
			BadgeReward: "Weight Master",
			DownloadFile: "M03_Task_02_Weighted_Score.xlsx",
			TimeLimit:    720,
			Requirements: []string{
				"Use SUMPRODUCT or basic arithmetic for the weighted score",
			},
			SkillNodes: []SkillNode{
				{Name: "Weighted Average", Formula: "=Score1*0.7 + Score2*0.3", Context: "Unequal weights", VideoTitle: "Arithmetic essentials"},
			},
		},
		{
			ID:          16,
			Module:      ModulePerformance,
			Title:       "L3. In-Department Ranking",
			Scenario:    "[Forced distribution] The company ranks within departments, not company-wide. Compute each employee's rank inside their own department.",
			Desc:        "CHRO: \"Who's first in R&D? And first in Sales?\"",
			XPReward:    25,
			BadgeReward: "Ranking Referee",
			DownloadFile: "M03_Task_03_Ranking.xlsx",
			TimeLimit:    900,
			Requirements: []string{
				"Use SUMPRODUCT or COUNTIFS for grouped ranking",
			},
			SkillNodes: []SkillNode{
				{Name: "Grouped Ranking", Formula: "=SUMPRODUCT((Dept=A2)*(Score>B2))+1", Context: "Rank within a group", VideoTitle: "SUMPRODUCT, advanced"},
			},
		},
		{
			ID:          17,
			Module:      ModulePerformance,
			Title:       "L4. Performance Dashboard",
			Scenario:    "[Visual analysis] Build a dynamic chart of each department's top-performer share (S and A grades), with a slicer to filter.",
			Desc:        "CEO: \"I want one chart I can flip between departments.\"",
			XPReward:    30,
			BadgeReward: "Chart Artist",
			DownloadFile: "M03_Task_04_Chart.xlsx",
			TimeLimit:    1200,
			Requirements: []string{
				"Use a pivot table with a slicer",
				"Build a stacked bar chart",
			},
			SkillNodes: []SkillNode{
				{Name: "Dynamic Charts", Formula: "Pivot Chart + Slicer", Context: "Interactive reporting", VideoTitle: "Building Excel dashboards"},
			},
		},
		{
			ID:          18,
			Module:      ModulePerformance,
			Title:       "BOSS. Annual Merit Matrix",
			Scenario:    "[BOSS: merit cycle] Raise percentage depends on performance grade and current salary position (compa-ratio). A two-dimensional matrix lookup.",
			Desc:        "Comp committee: \"High performers paid low get the biggest raise.\"",
			Boss:        true,
			XPReward:    50,
			BadgeReward: "Rewards Strategist",
			BadgeIcon:   IconSword,
			DownloadFile: "M03_Task_05_Boss_Merit.xlsx",
			TimeLimit:    1800,
			Requirements: []string{
				"Use INDEX and MATCH for the matrix lookup",
				"Estimate the raise budget",
			},
			SkillNodes: []SkillNode{
				{Name: "Matrix Lookup", Formula: "=INDEX(Matrix, MATCH(Row), MATCH(Col))", Context: "Two-dimensional cross lookup", VideoTitle: "The INDEX+MATCH combo"},
			},
		},

		// Module 4: Employee Relations
		{
			ID:          19,
			Module:      ModuleRelations,
			Kind:        KindQuiz,
			Title:       "⭐ Warm-up: Date Handling Sense",
			Scenario:    "[Welfare-committee warm-up] Event planning leans on dates. Before automating reminders, confirm the basic date functions.",
			Desc:        "Welfare committee: \"Get the month wrong and the birthday gift goes to the wrong person.\"",
			XPReward:    30,
			BadgeReward: "Employee Care Ambassador",
			BadgeIcon:   IconStar,
			Requirements: []string{
				"Understand MONTH and DAY",
				"Know basic text concatenation",
			},
			SkillNodes: []SkillNode{
				{Name: "Concept Check", Formula: "Quiz Mode", Context: "Dates and text", VideoTitle: "Date function basics"},
			},
			Practices: []Practice{
				{
					ID:       "p4_1",
					Question: "Cell A1 holds '2023/12/25'. What does =MONTH(A1) return?",
					Options: []string{
						"December",
						"12",
						"2023",
					},
					Answer:      1,
					Explanation: "MONTH returns only the month number (1-12). To show the month name, use TEXT, e.g. =TEXT(A1, \"mmmm\").",
				},
				{
					ID:       "p4_2",
					Question: "To join A1 'Wang' and B1 'Ming' into 'WangMing', which formula works?",
					Options: []string{
						"=A1 + B1",
						"=A1 & B1",
						"=SUM(A1, B1)",
					},
					Answer:      1,
					Explanation: "The & operator concatenates text strings. + only adds numbers.",
				},
			},
		},
		{
			ID:          20,
			Module:      ModuleRelations,
			Title:       "L1. Birthday List Extraction",
			Scenario:    "[Precise reminders] Beyond matching the month, add a highlight that fires 7 days before each birthday.",
			Desc:        "Admin: \"I want Excel to warn me about upcoming birthdays the moment I open it.\"",
			XPReward:    15,
			BadgeReward: "Celebration Ambassador",
			DownloadFile: "M04_Task_01_Birthday.xlsx",
			TimeLimit:    600,
			Requirements: []string{
				"Use conditional formatting",
				"Use TODAY() for a live comparison",
			},
			SkillNodes: []SkillNode{
				{Name: "Conditional Formatting", Formula: "=AND(Month=..., Day=...)", Context: "Visual reminders", VideoTitle: "Conditional formatting walkthrough"},
			},
		},
		{
			ID:          21,
			Module:      ModuleRelations,
			Title:       "L2. Probation Review Reminders",
			Scenario:    "[New-hire tracking] Every new hire is reviewed at the 3-month mark. Compute each person's probation end date.",
			Desc:        "HR specialist: \"Exact dates, please — the review forms go out on them.\"",
			XPReward:    20,
			BadgeReward: "Gatekeeper",
			BadgeIcon:   IconShield,
			DownloadFile: "M04_Task_02_Probation.xlsx",
			TimeLimit:    720,
			Requirements: []string{
				"Use EDATE to shift a date by N months",
			},
			SkillNodes: []SkillNode{
				{Name: "Date Arithmetic", Formula: "=EDATE(Start, 3)", Context: "N months ahead", VideoTitle: "The EDATE function"},
			},
		},
		{
			ID:          22,
			Module:      ModuleRelations,
			Title:       "L3. Service Award Tenure",
			Scenario:    "[Long-service rewards] Gold medals at 5, 10, and 15 years. Compute exact tenure and flag this year's qualifiers.",
			Desc:        "Welfare committee: \"Who hits 10 years this year? The medals get engraved.\"",
			XPReward:    25,
			BadgeReward: "Milestone Witness",
			DownloadFile: "M04_Task_03_Anniversary.xlsx",
			TimeLimit:    900,
			Requirements: []string{
				"Use DATEDIF for full years",
				"Use MOD to test multiples of 5",
			},
			SkillNodes: []SkillNode{
				{Name: "Multiple Test", Formula: "=MOD(Years, 5)=0", Context: "Every five years", VideoTitle: "MOD and remainders"},
			},
		},
		{
			ID:          23,
			Module:      ModuleRelations,
			Title:       "L4. Satisfaction Survey Stats",
			Scenario:    "[Employee voice] The annual survey is in. Compute per-department average satisfaction across pay, environment, and management.",
			Desc:        "CHRO: \"Which department is unhappiest? Bring me the numbers.\"",
			XPReward:    30,
			BadgeReward: "The Listener",
			DownloadFile: "M04_Task_04_Survey.xlsx",
			TimeLimit:    1200,
			Requirements: []string{
				"Use AVERAGEIF for per-department averages",
			},
			SkillNodes: []SkillNode{
				{Name: "Grouped Average", Formula: "=AVERAGEIF(DeptRange, Dept, ScoreRange)", Context: "Averages for a subgroup", VideoTitle: "AVERAGEIF in practice"},
			},
		},
	}
}

// Modules returns the distinct module names in catalog order.
func Modules(tasks []Task) []string {
	var names []string
	seen := make(map[string]bool)
	for _, t := range tasks {
		if !seen[t.Module] {
			seen[t.Module] = true
			names = append(names, t.Module)
		}
	}
	return names
}

// TasksBeforeModule returns how many catalog tasks precede the first task
// of the n-th module (1-based). Used by the placement override to decide
// how many tasks to pre-complete.
func TasksBeforeModule(tasks []Task, n int) int {
	names := Modules(tasks)
	if n <= 1 || len(names) == 0 {
		return 0
	}
	if n > len(names) {
		return len(tasks)
	}
	target := names[n-1]
	for i, t := range tasks {
		if t.Module == target {
			return i
		}
	}
	return len(tasks)
}
