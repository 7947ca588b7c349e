package domain

// EnglishTenses are the twelve tense labels the prompt asks the model to cover.
var EnglishTenses = []string{
	"Present Simple",
	"Present Continuous",
	"Present Perfect",
	"Present Perfect Continuous",
	"Past Simple",
	"Past Continuous",
	"Past Perfect",
	"Past Perfect Continuous",
	"Future Simple",
	"Future Continuous",
	"Future Perfect",
	"Future Perfect Continuous",
}

// ExampleBeliefs returns the fixed result served when no model credential is
// configured. It covers all twelve tenses across fifteen beliefs.
func ExampleBeliefs() *TransformedBeliefs {
	return &TransformedBeliefs{
		Logic: []Belief{
			{
				Text:        "Leadership is a skill, and I am building it every day.",
				Tense:       "Present Simple",
				Translation: "Lãnh đạo là một kỹ năng, và tôi xây dựng nó mỗi ngày.",
			},
			{
				Text:        "I have already solved problems that older people avoided.",
				Tense:       "Present Perfect",
				Translation: "Tôi đã giải quyết những vấn đề mà người lớn tuổi hơn né tránh.",
			},
			{
				Text:        "Many great leaders started younger than I was when I learned to organize people.",
				Tense:       "Past Simple",
				Translation: "Nhiều nhà lãnh đạo vĩ đại đã bắt đầu khi còn trẻ hơn tôi lúc tôi học cách tổ chức mọi người.",
			},
			{
				Text:        "By next year I will have led three teams to their goals.",
				Tense:       "Future Perfect",
				Translation: "Đến năm sau, tôi sẽ đã dẫn dắt ba đội đạt được mục tiêu của họ.",
			},
			{
				Text:        "Large scale is simply many people moving in one direction, and I will set that direction.",
				Tense:       "Future Simple",
				Translation: "Quy mô lớn đơn giản là nhiều người cùng đi một hướng, và tôi sẽ đặt ra hướng đi đó.",
			},
		},
		Emotion: []Belief{
			{
				Text:        "I am feeling proud every time someone follows my idea.",
				Tense:       "Present Continuous",
				Translation: "Tôi đang cảm thấy tự hào mỗi khi ai đó đi theo ý tưởng của tôi.",
			},
			{
				Text:        "I have been loving the energy of a big team for years.",
				Tense:       "Present Perfect Continuous",
				Translation: "Tôi đã và đang yêu nguồn năng lượng của một đội lớn trong nhiều năm.",
			},
			{
				Text:        "I was smiling while I was guiding my friends through hard times.",
				Tense:       "Past Continuous",
				Translation: "Tôi đã mỉm cười khi đang dẫn dắt bạn bè vượt qua những lúc khó khăn.",
			},
			{
				Text:        "Before anyone gave me a title, I had already earned their trust.",
				Tense:       "Past Perfect",
				Translation: "Trước khi ai đó trao cho tôi một chức danh, tôi đã giành được sự tin tưởng của họ.",
			},
			{
				Text:        "My youth is the fire that makes people want to follow me.",
				Tense:       "Present Simple",
				Translation: "Tuổi trẻ của tôi là ngọn lửa khiến mọi người muốn đi theo tôi.",
			},
		},
		Animal: []Belief{
			{
				Text:        "I had been practicing leadership long before I noticed it.",
				Tense:       "Past Perfect Continuous",
				Translation: "Tôi đã luyện tập khả năng lãnh đạo từ rất lâu trước khi tôi nhận ra điều đó.",
			},
			{
				Text:        "This time tomorrow I will be leading my first meeting.",
				Tense:       "Future Continuous",
				Translation: "Giờ này ngày mai, tôi sẽ đang dẫn dắt cuộc họp đầu tiên của mình.",
			},
			{
				Text:        "By the end of this decade I will have been leading for ten years.",
				Tense:       "Future Perfect Continuous",
				Translation: "Đến cuối thập kỷ này, tôi sẽ đã lãnh đạo được mười năm.",
			},
			{
				Text:        "I lead today. I act first.",
				Tense:       "Present Simple",
				Translation: "Hôm nay tôi dẫn dắt. Tôi hành động trước.",
			},
			{
				Text:        "I am scaling daily.",
				Tense:       "Present Continuous",
				Translation: "Tôi đang mở rộng quy mô mỗi ngày.",
			},
		},
	}
}
