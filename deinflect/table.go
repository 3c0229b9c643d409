package deinflect

const verbs = V1 | V5 | VS | VK | VZ

// inflectionRules is the built-in table, after the yomichan deinflection
// rules. Past polite forms are split into a past step (ました -> ます) and a
// polite step (ます -> る) through the Masu class.
var inflectionRules = []RuleGroup{
	{Reason: Ba, Rules: []Rule{
		r("ければ", "い", 0, AdjI),
		r("えば", "う", 0, V5),
		r("けば", "く", 0, V5),
		r("げば", "ぐ", 0, V5),
		r("せば", "す", 0, V5),
		r("てば", "つ", 0, V5),
		r("ねば", "ぬ", 0, V5),
		r("べば", "ぶ", 0, V5),
		r("めば", "む", 0, V5),
		r("れば", "る", 0, verbs),
	}},
	{Reason: Chau, Rules: []Rule{
		r("ちゃう", "る", V5, V1),
		r("いじゃう", "ぐ", V5, V5),
		r("いちゃう", "く", V5, V5),
		r("しちゃう", "す", V5, V5),
		r("っちゃう", "う", V5, V5),
		r("っちゃう", "つ", V5, V5),
		r("っちゃう", "る", V5, V5),
		r("んじゃう", "ぬ", V5, V5),
		r("んじゃう", "ぶ", V5, V5),
		r("んじゃう", "む", V5, V5),
		r("じちゃう", "ずる", V5, VZ),
		r("しちゃう", "する", V5, VS),
		r("為ちゃう", "為る", V5, VS),
		r("きちゃう", "くる", V5, VK),
		r("来ちゃう", "来る", V5, VK),
		r("來ちゃう", "來る", V5, VK),
		r("いっちゃう", "いく", V5, V5),
		r("行っちゃう", "行く", V5, V5),
		r("逝っちゃう", "逝く", V5, V5),
		r("往っちゃう", "往く", V5, V5),
	}},
	{Reason: Chimau, Rules: []Rule{
		r("ちまう", "る", V5, V1),
		r("いじまう", "ぐ", V5, V5),
		r("いちまう", "く", V5, V5),
		r("しちまう", "す", V5, V5),
		r("っちまう", "う", V5, V5),
		r("っちまう", "つ", V5, V5),
		r("っちまう", "る", V5, V5),
		r("んじまう", "ぬ", V5, V5),
		r("んじまう", "ぶ", V5, V5),
		r("んじまう", "む", V5, V5),
		r("じちまう", "ずる", V5, VZ),
		r("しちまう", "する", V5, VS),
		r("為ちまう", "為る", V5, VS),
		r("きちまう", "くる", V5, VK),
		r("来ちまう", "来る", V5, VK),
		r("來ちまう", "來る", V5, VK),
		r("いっちまう", "いく", V5, V5),
		r("行っちまう", "行く", V5, V5),
		r("逝っちまう", "逝く", V5, V5),
		r("往っちまう", "往く", V5, V5),
	}},
	{Reason: Shimau, Rules: []Rule{
		r("てしまう", "て", V5, Iru),
		r("でしまう", "で", V5, Iru),
	}},
	{Reason: Nasai, Rules: []Rule{
		r("なさい", "る", 0, V1),
		r("いなさい", "う", 0, V5),
		r("きなさい", "く", 0, V5),
		r("ぎなさい", "ぐ", 0, V5),
		r("しなさい", "す", 0, V5),
		r("ちなさい", "つ", 0, V5),
		r("になさい", "ぬ", 0, V5),
		r("びなさい", "ぶ", 0, V5),
		r("みなさい", "む", 0, V5),
		r("りなさい", "る", 0, V5),
		r("じなさい", "ずる", 0, VZ),
		r("しなさい", "する", 0, VS),
		r("為なさい", "為る", 0, VS),
		r("きなさい", "くる", 0, VK),
		r("来なさい", "来る", 0, VK),
		r("來なさい", "來る", 0, VK),
	}},
	{Reason: Sou, Rules: []Rule{
		r("そう", "い", 0, AdjI),
		r("そう", "る", 0, V1),
		r("いそう", "う", 0, V5),
		r("きそう", "く", 0, V5),
		r("ぎそう", "ぐ", 0, V5),
		r("しそう", "す", 0, V5),
		r("ちそう", "つ", 0, V5),
		r("にそう", "ぬ", 0, V5),
		r("びそう", "ぶ", 0, V5),
		r("みそう", "む", 0, V5),
		r("りそう", "る", 0, V5),
		r("じそう", "ずる", 0, VZ),
		r("しそう", "する", 0, VS),
		r("為そう", "為る", 0, VS),
		r("きそう", "くる", 0, VK),
		r("来そう", "来る", 0, VK),
		r("來そう", "來る", 0, VK),
	}},
	{Reason: Sugiru, Rules: []Rule{
		r("すぎる", "い", V1, AdjI),
		r("すぎる", "る", V1, V1),
		r("いすぎる", "う", V1, V5),
		r("きすぎる", "く", V1, V5),
		r("ぎすぎる", "ぐ", V1, V5),
		r("しすぎる", "す", V1, V5),
		r("ちすぎる", "つ", V1, V5),
		r("にすぎる", "ぬ", V1, V5),
		r("びすぎる", "ぶ", V1, V5),
		r("みすぎる", "む", V1, V5),
		r("りすぎる", "る", V1, V5),
		r("じすぎる", "ずる", V1, VZ),
		r("しすぎる", "する", V1, VS),
		r("為すぎる", "為る", V1, VS),
		r("きすぎる", "くる", V1, VK),
		r("来すぎる", "来る", V1, VK),
		r("來すぎる", "來る", V1, VK),
	}},
	{Reason: Tai, Rules: []Rule{
		r("たい", "る", AdjI, V1),
		r("いたい", "う", AdjI, V5),
		r("きたい", "く", AdjI, V5),
		r("ぎたい", "ぐ", AdjI, V5),
		r("したい", "す", AdjI, V5),
		r("ちたい", "つ", AdjI, V5),
		r("にたい", "ぬ", AdjI, V5),
		r("びたい", "ぶ", AdjI, V5),
		r("みたい", "む", AdjI, V5),
		r("りたい", "る", AdjI, V5),
		r("じたい", "ずる", AdjI, VZ),
		r("したい", "する", AdjI, VS),
		r("為たい", "為る", AdjI, VS),
		r("きたい", "くる", AdjI, VK),
		r("来たい", "来る", AdjI, VK),
		r("來たい", "來る", AdjI, VK),
	}},
	{Reason: Tara, Rules: teForms("たら", "だら", 0, "かったら")},
	{Reason: Tari, Rules: teForms("たり", "だり", 0, "かったり")},
	{Reason: Te, Rules: teForms("て", "で", Iru, "くて")},
	{Reason: Zu, Rules: []Rule{
		r("ず", "る", 0, V1),
		r("かず", "く", 0, V5),
		r("がず", "ぐ", 0, V5),
		r("さず", "す", 0, V5),
		r("たず", "つ", 0, V5),
		r("なず", "ぬ", 0, V5),
		r("ばず", "ぶ", 0, V5),
		r("まず", "む", 0, V5),
		r("らず", "る", 0, V5),
		r("わず", "う", 0, V5),
		r("ぜず", "ずる", 0, VZ),
		r("せず", "する", 0, VS),
		r("為ず", "為る", 0, VS),
		r("こず", "くる", 0, VK),
		r("来ず", "来る", 0, VK),
		r("來ず", "來る", 0, VK),
	}},
	{Reason: Nu, Rules: []Rule{
		r("ぬ", "る", 0, V1),
		r("かぬ", "く", 0, V5),
		r("がぬ", "ぐ", 0, V5),
		r("さぬ", "す", 0, V5),
		r("たぬ", "つ", 0, V5),
		r("なぬ", "ぬ", 0, V5),
		r("ばぬ", "ぶ", 0, V5),
		r("まぬ", "む", 0, V5),
		r("らぬ", "る", 0, V5),
		r("わぬ", "う", 0, V5),
		r("ぜぬ", "ずる", 0, VZ),
		r("せぬ", "する", 0, VS),
		r("為ぬ", "為る", 0, VS),
		r("こぬ", "くる", 0, VK),
		r("来ぬ", "来る", 0, VK),
		r("來ぬ", "來る", 0, VK),
	}},
	{Reason: Adv, Rules: []Rule{
		r("く", "い", 0, AdjI),
	}},
	{Reason: Causative, Rules: []Rule{
		r("させる", "る", V1, V1),
		r("かせる", "く", V1, V5),
		r("がせる", "ぐ", V1, V5),
		r("させる", "す", V1, V5),
		r("たせる", "つ", V1, V5),
		r("なせる", "ぬ", V1, V5),
		r("ばせる", "ぶ", V1, V5),
		r("ませる", "む", V1, V5),
		r("らせる", "る", V1, V5),
		r("わせる", "う", V1, V5),
		r("じさせる", "ずる", V1, VZ),
		r("ぜさせる", "ずる", V1, VZ),
		r("させる", "する", V1, VS),
		r("為せる", "為る", V1, VS),
		r("せさせる", "する", V1, VS),
		r("為させる", "為る", V1, VS),
		r("こさせる", "くる", V1, VK),
		r("来させる", "来る", V1, VK),
		r("來させる", "來る", V1, VK),
	}},
	{Reason: Imperative, Rules: []Rule{
		r("ろ", "る", 0, V1),
		r("よ", "る", 0, V1),
		r("え", "う", 0, V5),
		r("け", "く", 0, V5),
		r("げ", "ぐ", 0, V5),
		r("せ", "す", 0, V5),
		r("て", "つ", 0, V5),
		r("ね", "ぬ", 0, V5),
		r("べ", "ぶ", 0, V5),
		r("め", "む", 0, V5),
		r("れ", "る", 0, V5),
		r("じろ", "ずる", 0, VZ),
		r("ぜよ", "ずる", 0, VZ),
		r("しろ", "する", 0, VS),
		r("せよ", "する", 0, VS),
		r("為ろ", "為る", 0, VS),
		r("為よ", "為る", 0, VS),
		r("こい", "くる", 0, VK),
		r("来い", "来る", 0, VK),
		r("來い", "來る", 0, VK),
	}},
	{Reason: ImperativeNegative, Rules: []Rule{
		r("な", "", 0, verbs),
	}},
	{Reason: MasuStem, Rules: []Rule{
		r("い", "いる", 0, V1),
		r("え", "える", 0, V1),
		r("き", "きる", 0, V1),
		r("ぎ", "ぎる", 0, V1),
		r("け", "ける", 0, V1),
		r("げ", "げる", 0, V1),
		r("じ", "じる", 0, V1),
		r("せ", "せる", 0, V1),
		r("ぜ", "ぜる", 0, V1),
		r("ち", "ちる", 0, V1),
		r("て", "てる", 0, V1),
		r("で", "でる", 0, V1),
		r("に", "にる", 0, V1),
		r("ね", "ねる", 0, V1),
		r("ひ", "ひる", 0, V1),
		r("び", "びる", 0, V1),
		r("へ", "へる", 0, V1),
		r("べ", "べる", 0, V1),
		r("み", "みる", 0, V1),
		r("め", "める", 0, V1),
		r("り", "りる", 0, V1),
		r("れ", "れる", 0, V1),
		r("い", "う", 0, V5),
		r("き", "く", 0, V5),
		r("ぎ", "ぐ", 0, V5),
		r("し", "す", 0, V5),
		r("ち", "つ", 0, V5),
		r("に", "ぬ", 0, V5),
		r("び", "ぶ", 0, V5),
		r("み", "む", 0, V5),
		r("り", "る", 0, V5),
		r("き", "くる", 0, VK),
		r("来", "来る", 0, VK),
		r("來", "來る", 0, VK),
	}},
	{Reason: Negative, Rules: []Rule{
		r("くない", "い", AdjI, AdjI),
		r("ない", "る", AdjI, V1),
		r("かない", "く", AdjI, V5),
		r("がない", "ぐ", AdjI, V5),
		r("さない", "す", AdjI, V5),
		r("たない", "つ", AdjI, V5),
		r("なない", "ぬ", AdjI, V5),
		r("ばない", "ぶ", AdjI, V5),
		r("まない", "む", AdjI, V5),
		r("らない", "る", AdjI, V5),
		r("わない", "う", AdjI, V5),
		r("じない", "ずる", AdjI, VZ),
		r("しない", "する", AdjI, VS),
		r("為ない", "為る", AdjI, VS),
		r("こない", "くる", AdjI, VK),
		r("来ない", "来る", AdjI, VK),
		r("來ない", "來る", AdjI, VK),
	}},
	{Reason: Noun, Rules: []Rule{
		r("さ", "い", 0, AdjI),
	}},
	{Reason: Passive, Rules: []Rule{
		r("かれる", "く", V1, V5),
		r("がれる", "ぐ", V1, V5),
		r("される", "す", V1, V5),
		r("たれる", "つ", V1, V5),
		r("なれる", "ぬ", V1, V5),
		r("ばれる", "ぶ", V1, V5),
		r("まれる", "む", V1, V5),
		r("われる", "う", V1, V5),
		r("られる", "る", V1, V5),
		r("じされる", "ずる", V1, VZ),
		r("ぜされる", "ずる", V1, VZ),
		r("される", "する", V1, VS),
		r("為れる", "為る", V1, VS),
		r("こられる", "くる", V1, VK),
		r("来られる", "来る", V1, VK),
		r("來られる", "來る", V1, VK),
	}},
	{Reason: Past, Rules: append(teForms("た", "だ", 0, "かった"),
		r("ました", "ます", 0, Masu),
	)},
	{Reason: Polite, Rules: []Rule{
		r("ます", "る", Masu, V1),
		r("います", "う", Masu, V5),
		r("きます", "く", Masu, V5),
		r("ぎます", "ぐ", Masu, V5),
		r("します", "す", Masu, V5),
		r("ちます", "つ", Masu, V5),
		r("にます", "ぬ", Masu, V5),
		r("びます", "ぶ", Masu, V5),
		r("みます", "む", Masu, V5),
		r("ります", "る", Masu, V5),
		r("じます", "ずる", Masu, VZ),
		r("します", "する", Masu, VS),
		r("為ます", "為る", Masu, VS),
		r("きます", "くる", Masu, VK),
		r("来ます", "来る", Masu, VK),
		r("來ます", "來る", Masu, VK),
	}},
	{Reason: PoliteNegative, Rules: masuForms("ません", "くありません")},
	{Reason: PolitePastNegative, Rules: masuForms("ませんでした", "くありませんでした")},
	{Reason: PoliteVolitional, Rules: masuForms("ましょう", "")},
	{Reason: Potential, Rules: []Rule{
		r("える", "う", V1, V5),
		r("ける", "く", V1, V5),
		r("げる", "ぐ", V1, V5),
		r("せる", "す", V1, V5),
		r("てる", "つ", V1, V5),
		r("ねる", "ぬ", V1, V5),
		r("べる", "ぶ", V1, V5),
		r("める", "む", V1, V5),
		r("れる", "る", V1, V5),
		r("これる", "くる", V1, VK),
		r("来れる", "来る", V1, VK),
		r("來れる", "來る", V1, VK),
	}},
	{Reason: PotentialOrPassive, Rules: []Rule{
		r("られる", "る", V1, V1),
		r("ざれる", "ずる", V1, VZ),
		r("ぜられる", "ずる", V1, VZ),
		r("せられる", "する", V1, VS),
		r("為られる", "為る", V1, VS),
		r("こられる", "くる", V1, VK),
		r("来られる", "来る", V1, VK),
		r("來られる", "來る", V1, VK),
	}},
	{Reason: Volitional, Rules: []Rule{
		r("よう", "る", 0, V1),
		r("おう", "う", 0, V5),
		r("こう", "く", 0, V5),
		r("ごう", "ぐ", 0, V5),
		r("そう", "す", 0, V5),
		r("とう", "つ", 0, V5),
		r("のう", "ぬ", 0, V5),
		r("ぼう", "ぶ", 0, V5),
		r("もう", "む", 0, V5),
		r("ろう", "る", 0, V5),
		r("じよう", "ずる", 0, VZ),
		r("しよう", "する", 0, VS),
		r("為よう", "為る", 0, VS),
		r("こよう", "くる", 0, VK),
		r("来よう", "来る", 0, VK),
		r("來よう", "來る", 0, VK),
	}},
	{Reason: CausativePassive, Rules: []Rule{
		r("かされる", "く", V1, V5),
		r("がされる", "ぐ", V1, V5),
		r("たされる", "つ", V1, V5),
		r("なされる", "ぬ", V1, V5),
		r("ばされる", "ぶ", V1, V5),
		r("まされる", "む", V1, V5),
		r("らされる", "る", V1, V5),
		r("わされる", "う", V1, V5),
	}},
	{Reason: Toku, Rules: []Rule{
		r("とく", "る", V5, V1),
		r("いとく", "く", V5, V5),
		r("いどく", "ぐ", V5, V5),
		r("しとく", "す", V5, V5),
		r("っとく", "う", V5, V5),
		r("っとく", "つ", V5, V5),
		r("っとく", "る", V5, V5),
		r("んどく", "ぬ", V5, V5),
		r("んどく", "ぶ", V5, V5),
		r("んどく", "む", V5, V5),
		r("じとく", "ずる", V5, VZ),
		r("しとく", "する", V5, VS),
		r("為とく", "為る", V5, VS),
		r("きとく", "くる", V5, VK),
		r("来とく", "来る", V5, VK),
		r("來とく", "來る", V5, VK),
		r("いっとく", "いく", V5, V5),
		r("行っとく", "行く", V5, V5),
		r("逝っとく", "逝く", V5, V5),
		r("往っとく", "往く", V5, V5),
	}},
	{Reason: ProgressiveOrPerfect, Rules: []Rule{
		r("ている", "て", V1, Iru),
		r("ておる", "て", V5, Iru),
		r("てる", "て", V1, Iru),
		r("でいる", "で", V1, Iru),
		r("でおる", "で", V5, Iru),
		r("でる", "で", V1, Iru),
		r("とる", "て", V5, Iru),
		r("ないでいる", "ない", V1, AdjI),
	}},
	{Reason: Ki, Rules: []Rule{
		r("き", "い", 0, AdjI),
	}},
	{Reason: Ge, Rules: []Rule{
		r("しげ", "しい", 0, AdjI),
	}},
	{Reason: E, Rules: []Rule{
		r("ねえ", "ない", 0, AdjI),
		r("めえ", "むい", 0, AdjI),
		r("みい", "むい", 0, AdjI),
		r("ちぇえ", "つい", 0, AdjI),
		r("ちい", "つい", 0, AdjI),
		r("せえ", "すい", 0, AdjI),
		r("ええ", "いい", 0, AdjI),
		r("ええ", "わい", 0, AdjI),
		r("ええ", "よい", 0, AdjI),
		r("いぇえ", "よい", 0, AdjI),
		r("うぇえ", "わい", 0, AdjI),
		r("けえ", "かい", 0, AdjI),
		r("げえ", "がい", 0, AdjI),
		r("げえ", "ごい", 0, AdjI),
		r("せえ", "さい", 0, AdjI),
		r("めえ", "まい", 0, AdjI),
		r("ぜえ", "ずい", 0, AdjI),
		r("っぜえ", "ずい", 0, AdjI),
		r("れえ", "らい", 0, AdjI),
		r("れえ", "れい", 0, AdjI),
		r("ちぇえ", "ちゃい", 0, AdjI),
		r("でえ", "どい", 0, AdjI),
		r("べえ", "ばい", 0, AdjI),
		r("てえ", "たい", 0, AdjI),
		r("ねぇ", "ない", 0, AdjI),
	}},
}

// teForms builds the rules shared by the te form and the forms derived from
// it (past, -tara, -tari). t and d are the unvoiced and voiced endings, adj
// the i-adjective ending.
func teForms(t, d string, in Class, adj string) []Rule {
	rules := []Rule{
		r(adj, "い", in, AdjI),
		r(t, "る", in, V1),
		r("い"+t, "く", in, V5),
		r("い"+d, "ぐ", in, V5),
		r("し"+t, "す", in, V5),
		r("っ"+t, "う", in, V5),
		r("っ"+t, "つ", in, V5),
		r("っ"+t, "る", in, V5),
		r("ん"+d, "ぬ", in, V5),
		r("ん"+d, "ぶ", in, V5),
		r("ん"+d, "む", in, V5),
		r("じ"+t, "ずる", in, VZ),
		r("し"+t, "する", in, VS),
		r("為"+t, "為る", in, VS),
		r("き"+t, "くる", in, VK),
		r("来"+t, "来る", in, VK),
		r("來"+t, "來る", in, VK),
		r("いっ"+t, "いく", in, V5),
		r("行っ"+t, "行く", in, V5),
		r("逝っ"+t, "逝く", in, V5),
		r("往っ"+t, "往く", in, V5),
		r("のたもう"+t, "のたまう", in, V5),
	}
	// Classical te forms of う verbs after お and う sounds: 問うて, 請うた.
	for _, stem := range []string{"おう", "こう", "そう", "とう", "請う", "乞う", "恋う", "問う", "負う", "沿う", "添う", "副う", "厭う"} {
		rules = append(rules, r(stem+t, stem, in, V5))
	}
	return rules
}

// masuForms builds the rules for a polite ending attached to the masu stem.
// adj is the i-adjective ending, or empty when there is none.
func masuForms(end, adj string) []Rule {
	var rules []Rule
	if adj != "" {
		rules = append(rules, r(adj, "い", 0, AdjI))
	}
	return append(rules,
		r(end, "る", 0, V1),
		r("い"+end, "う", 0, V5),
		r("き"+end, "く", 0, V5),
		r("ぎ"+end, "ぐ", 0, V5),
		r("し"+end, "す", 0, V5),
		r("ち"+end, "つ", 0, V5),
		r("に"+end, "ぬ", 0, V5),
		r("び"+end, "ぶ", 0, V5),
		r("み"+end, "む", 0, V5),
		r("り"+end, "る", 0, V5),
		r("じ"+end, "ずる", 0, VZ),
		r("し"+end, "する", 0, VS),
		r("為"+end, "為る", 0, VS),
		r("き"+end, "くる", 0, VK),
		r("来"+end, "来る", 0, VK),
		r("來"+end, "來る", 0, VK),
	)
}
