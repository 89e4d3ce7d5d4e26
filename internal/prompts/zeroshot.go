package prompts

import "github.com/atamiles/vlures-bench/pkg/models"

// zeroShotCatalog holds the plain zero-shot prompts: the model is asked for
// its analysis only, with no rationale section.
var zeroShotCatalog = Catalog{
	Setting: models.SettingZeroShot,
	Languages: map[string]LanguageConfig{
		"English": {
			Code:         "En",
			SystemPrompt: "You are an AI assistant that analyzes images and text.",
			ImageOnlyTemplate: `You are an intelligent assistant tasked with analyzing images. Please perform the following task for the given image:

{{.TaskDescription}}

Provide your analysis for this task only, clearly labeled.`,
			ImageTextTemplate: `You are an intelligent assistant tasked with analyzing the relationship between images and text.
Please examine both the image and the provided text carefully.

Text associated with the image:
{{.TextContent}}

Task:
{{.TaskDescription}}

Provide your analysis based on both the image and text. Be specific and reference evidence from both sources.`,
			Tasks: map[int]string{
				1: "Analyze this image and list all objects present. Categorize each object into groups such as furniture, electronic devices, clothing, etc. Be thorough and specific in your identification.",
				2: "Describe the overall scene in this image. What is the setting, and what activities or events are taking place? Provide a comprehensive overview of the environment and any actions occurring.",
				3: "Identify any interactions or relationships between objects or entities in this image. How are they related or interacting with each other? Explain any spatial, functional, or social connections you observe.",
				4: "Divide this image into different semantic regions. Label each region (e.g., sky, buildings, people, street) and briefly describe its contents. Provide a clear breakdown of the image's composition.",
				5: "Provide a detailed, natural language description of what is happening in this image. Narrate the scene as if you were explaining it to someone who cannot see it, including all relevant details and actions.",
				6: "Extract and list the specific parts of the text that closely match or directly reference entities, objects, or scenes depicted in the image. Be precise in identifying these connections and explain the visual evidence that supports each textual reference.",
				7: "Identify which parts of the text are not relevant to or not represented in the image. Explain why these elements are unrelated by describing what is missing in the image that would be needed to illustrate these textual elements.",
				8: "What places are mentioned in the text or shown in the image? For each place identified, indicate whether it appears in the text, the image, or both. If any of these places are famous or well-known locations, explain why they are significant.",
			},
		},
		"Japanese": {
			Code:         "Jp",
			SystemPrompt: "あなたは画像とテキストを分析し、日本語で回答する AI アシスタントです。",
			ImageOnlyTemplate: `あなたは画像を分析し、日本語で回答する知的なアシスタントです。
以下のタスクに従って、与えられた画像を分析してください：

{{.TaskDescription}}

このタスクに対する分析のみを明確にラベル付けして日本語で提供してください。`,
			ImageTextTemplate: `あなたは画像とテキストの関係を分析し、日本語で回答する知的なアシスタントです。
画像と提供されたテキストの両方を注意深く検討してください。

画像に関連するテキスト:
{{.TextContent}}

タスク:
{{.TaskDescription}}

画像とテキストの両方に基づいてあなたの分析を提供してください。具体的で、両方のソースからの証拠を参照してください。`,
			Tasks: map[int]string{
				1: "この画像に存在するすべてのオブジェクトを分析し、リストアップしてください。家具、電子機器、衣類などのグループにオブジェクトを分類してください。識別は徹底的かつ具体的に行ってください。",
				2: "この画像の全体的な場面を説明してください。どのような設定で、どのような活動や出来事が起こっているでしょうか？環境や発生している行動の包括的な概要を提供してください。",
				3: "この画像内のオブジェクトや実体間の相互作用や関係を特定してください。それらはどのように関連し、相互作用していますか？空間的、機能的、または社会的なつながりを説明してください。",
				4: "この画像を異なる意味領域に分割してください。各領域（例：空、建物、人、通りなど）にラベルを付け、その内容を簡潔に説明してください。画像の構成を明確に分類してください。",
				5: "この画像で起こっていることの詳細な自然言語による説明を提供してください。まるで見ることができない人に説明するかのように、すべての関連する詳細や行動を含めて場面を語ってください。",
				6: "テキストの特定の部分で、画像に描かれているエンティティ、オブジェクト、またはシーンに密接に一致または直接言及している部分を抽出してリストアップしてください。これらの接続を特定する際に正確であり、各テキスト参照をサポートする視覚的証拠を説明してください。",
				7: "テキストのどの部分が画像に関連していないか、または画像に表現されていないかを特定してください。これらのテキスト要素を説明するために画像に必要なものが何が欠けているかを説明して、これらの要素が無関係である理由を説明してください。",
				8: "テキストや画像で言及されている場所はどこですか？特定された各場所について、それがテキスト、画像、またはその両方に現れるかを示してください。これらの場所のいずれかが有名または広く知られている場所である場合、それらが重要である理由を説明してください。",
			},
		},
		"Swahili": {
			Code:         "Sw",
			SystemPrompt: "Wewe ni AI msaidizi unayechambua picha na maandishi na kutoa majibu kwa lugha ya Kiswahili.",
			ImageOnlyTemplate: `Wewe ni msaidizi wa akili unaechambua picha na kutoa majibu kwa lugha ya Kiswahili.
Tafadhali chambua picha uliyopewa kwa kufuata maelekezo yafuatayo:

{{.TaskDescription}}

Tafadhali toa uchambuzi wako kwa lugha ya Kiswahili pekee, na uweke lebo wazi.`,
			ImageTextTemplate: `Wewe ni msaidizi wa akili unayechambua uhusiano kati ya picha na maandishi na kutoa majibu kwa lugha ya Kiswahili.
Tafadhali chunguza kwa makini picha na maandishi yaliyotolewa.

Maandishi yanayohusiana na picha:
{{.TextContent}}

Kazi:
{{.TaskDescription}}

Toa uchambuzi wako ukizingatia picha na maandishi. Kuwa mahususi na taja ushahidi kutoka vyanzo vyote viwili.`,
			Tasks: map[int]string{
				1: "Changanua picha hii na uorodheshe vitu vyote vilivyomo. Ainisha kila kitu katika makundi kama vile samani, vifaa vya elektroniki, mavazi, n.k. Kuwa makini na maalum katika utambulisho wako.",
				2: "Elezea mandhari nzima katika picha hii. Mazingira ni yapi, na ni shughuli au matukio gani yanayoendelea? Toa maelezo ya kina ya mazingira na vitendo vyovyote vinavyofanyika.",
				3: "Tambua mahusiano yoyote au uhusiano kati ya vitu au viumbe katika picha hii. Vinahusianaje au vinaathirianaje? Eleza uhusiano wowote wa kimwili, kiutendaji, au kijamii unaoona.",
				4: "Gawanya picha hii katika maeneo tofauti ya kisemantiki. Taja kila eneo (k.m. anga, majengo, watu, barabara) na uelezee kwa ufupi yaliyomo. Toa mgawanyo wazi wa muundo wa picha.",
				5: "Toa maelezo ya kina ya kimaandishi kuhusu kinachotokea katika picha hii. Simulia tukio kana kwamba unamwelezea mtu asiyeweza kuiona, ukijumuisha maelezo yote muhimu na vitendo.",
				6: "Toa na uorodheshe sehemu mahususi za maandishi zinazofanana sana au zinazorejelea moja kwa moja vitu, viumbe, au mandhari zilizooneshwa katika picha. Kuwa sahihi katika kutambua uhusiano huu na ueleze ushahidi wa kuona unaounga mkono kila rejeleo la maandishi.",
				7: "Tambua ni sehemu gani za maandishi ambazo hazihusiani au haziwakilishwi katika picha. Eleza kwa nini vipengele hivi havihusiani kwa kuelezea kile kinachokosekana katika picha ambacho kingekuwa muhimu kufafanua vipengele hivi vya maandishi.",
				8: "Ni maeneo gani yametajwa katika maandishi au yanaonekana katika picha? Kwa kila eneo lililotambuliwa, onyesha kama linaonekana katika maandishi, picha, au vyote. Ikiwa maeneo haya yoyote ni mashuhuri au yanayojulikana sana, eleza kwa nini yana umuhimu.",
			},
		},
		"Urdu": {
			Code:         "Ur",
			SystemPrompt: "آپ ایک ایسے AI اسسٹنٹ ہیں جو تصاویر اور متن کا تجزیہ کرتے ہیں اور اردو میں جوابات فراہم کرتے ہیں۔",
			ImageOnlyTemplate: `آپ ایک ایسے ذہین اسسٹنٹ ہیں جو تصاویر کا تجزیہ کرتے ہیں اور اردو میں جوابات فراہم کرتے ہیں۔
براہ کرم درج ذیل ٹاسک کے مطابق، دی گئی تصویر کا تجزیہ کریں:

{{.TaskDescription}}

براہ کرم صرف اس ٹاسک کے لیے اپنا تجزیہ واضح طور پر اردو میں پیش کریں۔`,
			ImageTextTemplate: `آپ ایک ایسے ذہین اسسٹنٹ ہیں جو تصاویر اور متن کے درمیان تعلق کا تجزیہ کرتے ہیں اور اردو میں جوابات فراہم کرتے ہیں۔
براہ کرم تصویر اور فراہم کردہ متن دونوں کا احتیاط سے جائزہ لیں۔

تصویر سے متعلق متن:
{{.TextContent}}

ٹاسک:
{{.TaskDescription}}

تصویر اور متن دونوں کے مطابق اپنا تجزیہ فراہم کریں۔ مخصوص ہوں اور دونوں ذرائع سے شواہد کا حوالہ دیں۔`,
			Tasks: map[int]string{
				1: "اس تصویر کا تجزیہ کریں اور موجود تمام اشیاء کی فہرست بنائیں۔ ہر شے کو گروپس میں درجہ بندی کریں جیسے فرنیچر، الیکٹرانک آلات، کپڑے، وغیرہ۔ اپنی شناخت میں جامع اور مخصوص رہیں۔",
				2: "اس تصویر میں مجموعی منظر کی تفصیل بیان کریں۔ ماحول کیا ہے، اور کون سی سرگرمیاں یا واقعات پیش آرہے ہیں؟ ماحول اور کسی بھی قابل ذکر کارروائی کا جامع جائزہ فراہم کریں۔",
				3: "اس تصویر میں اشیاء یا اکائیوں کے درمیان کسی بھی تعامل یا تعلقات کی نشاندہی کریں۔ وہ ایک دوسرے سے کیسے متعلق ہیں یا تعامل کر رہے ہیں؟ کسی بھی مکانی، فعال، یا سماجی روابط کی وضاحت کریں جو آپ دیکھتے ہیں۔",
				4: "اس تصویر کو مختلف معنی خیز علاقوں میں تقسیم کریں۔ ہر علاقے کو لیبل کریں (مثلاً، آسمان، عمارات، لوگ، سڑک) اور مختصراً اس کے مواد کی وضاحت کریں۔ تصویر کی ساخت کا واضح تجزیہ فراہم کریں۔",
				5: "اس تصویر میں کیا ہو رہا ہے اس کی تفصیلی، قدرتی زبان میں وضاحت فراہم کریں۔ منظر کی ایسے بیان کریں جیسے آپ کسی ایسے شخص کو سمجھا رہے ہوں جو اسے دیکھ نہیں سکتا، تمام متعلقہ تفصیلات اور کارروائیوں کو شامل کرتے ہوئے۔",
				6: "متن کے مخصوص حصے نکالیں اور فہرست بنائیں جو تصویر میں دکھائے گئے اداروں، اشیاء، یا مناظر سے قریبی مماثلت رکھتے ہیں یا براہ راست ان کا حوالہ دیتے ہیں۔ ان روابط کی شناخت میں درست رہیں اور ہر متنی حوالے کی تائید کرنے والے بصری شواہد کی وضاحت کریں۔",
				7: "متن کے کون سے حصے تصویر سے متعلق نہیں ہیں یا تصویر میں نمائندگی نہیں کرتے ہیں، اس کی نشاندہی کریں۔ ان عناصر کے غیر متعلقہ ہونے کی وجہ بیان کریں، یہ وضاحت کرکے کہ تصویر میں ان متنی عناصر کی وضاحت کے لیے کیا چیز غائب ہے۔",
				8: "متن یا تصویر میں کون سی جگہوں کا ذکر کیا گیا ہے؟ شناخت شدہ ہر جگہ کے لیے، بتائیں کہ یہ متن میں، تصویر میں، یا دونوں میں ظاہر ہوتی ہے۔ اگر ان میں سے کوئی بھی جگہ مشہور یا جانی پہچانی مقامات ہیں، تو بتائیں کہ وہ کیوں اہم ہیں۔",
			},
		},
	},
}
